package tableview

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iw2rmb/edtable/table"
)

type updates struct {
	calls [][][]string
}

func (u *updates) record(data [][]string) { u.calls = append(u.calls, data) }

func (u *updates) last() [][]string {
	if len(u.calls) == 0 {
		return nil
	}
	return u.calls[len(u.calls)-1]
}

func demoConfig(u *updates) Config {
	cfg := Config{
		Columns:     []string{"first name", "last name"},
		InitialData: [][]string{{"Mikhael Glen", "Lataza"}, {"Marigold", "Caitor"}},
	}
	if u != nil {
		cfg.OnUpdate = u.record
	}
	return cfg
}

func mustNew(t *testing.T, cfg Config) Model {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNew_MountNotifiesOnceWithInitialData(t *testing.T) {
	u := &updates{}
	m := mustNew(t, demoConfig(u))

	if got := len(u.calls); got != 1 {
		t.Fatalf("update calls: got %d, want 1", got)
	}
	want := [][]string{{"Mikhael Glen", "Lataza"}, {"Marigold", "Caitor"}}
	if got := u.calls[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("mount data: got %v, want %v", got, want)
	}
	if got := m.Table().Len(); got != 2 {
		t.Fatalf("rows: got %d, want 2", got)
	}
	if !m.Focused() {
		t.Fatalf("expected model focused by default")
	}
}

func TestNew_DefaultsActionsColumnName(t *testing.T) {
	m := mustNew(t, demoConfig(nil))
	if got := m.cfg.ActionsColumnName; got != DefaultActionsColumnName {
		t.Fatalf("actions column name: got %q, want %q", got, DefaultActionsColumnName)
	}
}

func TestNew_RejectsMismatchedRows(t *testing.T) {
	cfg := demoConfig(nil)
	cfg.InitialData = [][]string{{"too", "many", "cells"}}
	if _, err := New(cfg); !errors.Is(err, table.ErrRowWidth) {
		t.Fatalf("err: got %v, want %v", err, table.ErrRowWidth)
	}

	cfg.Normalize = true
	m := mustNew(t, cfg)
	if got, want := m.Data(), [][]string{{"too", "many"}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("data: got %v, want %v", got, want)
	}
}

func TestSetCursor_Clamps(t *testing.T) {
	m := mustNew(t, demoConfig(nil))

	m = m.SetCursor(Cell{Row: 99, Col: 99})
	if got, want := m.Cursor(), (Cell{Row: 2, Col: 3}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
	m = m.SetCursor(Cell{Row: -1, Col: -1})
	if got, want := m.Cursor(), (Cell{}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestFocusBlur_TogglesInput(t *testing.T) {
	m := mustNew(t, demoConfig(nil))
	m = m.SetCursor(Cell{Row: 2, Col: 0})
	if !m.input.Focused() {
		t.Fatalf("input should be focused on the new-row line")
	}

	m = m.Blur()
	if m.Focused() || m.input.Focused() {
		t.Fatalf("blur must release the input")
	}
	m = m.Focus()
	if !m.input.Focused() {
		t.Fatalf("focus must rebind the input")
	}
}
