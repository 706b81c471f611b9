package tableview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRender_UnsizedShowsWholeTable(t *testing.T) {
	m := mustNew(t, demoConfig(nil))

	lines := strings.Split(m.View(), "\n")
	want := []string{
		"first name   │ last name │ actions          ",
		"─────────────┼───────────┼──────────────────",
		"Mikhael Glen │ Lataza    │ [Edit] [Delete]  ",
		"Marigold     │ Caitor    │ [Edit] [Delete]  ",
		"             │           │ [Add] [Clear]    ",
	}
	if len(lines) != len(want) {
		t.Fatalf("line count: got %d, want %d\n%s", len(lines), len(want), m.View())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d:\n got: %q\nwant: %q", i, lines[i], want[i])
		}
	}
}

func TestRender_CustomActionsColumnName(t *testing.T) {
	cfg := demoConfig(nil)
	cfg.ActionsColumnName = "ops"
	m := mustNew(t, cfg)

	header := strings.Split(m.View(), "\n")[0]
	if !strings.HasSuffix(strings.TrimRight(header, " "), "│ ops") {
		t.Fatalf("header: got %q", header)
	}
}

func TestRender_EditingRowShowsInputsAndUpdate(t *testing.T) {
	m := mustNew(t, demoConfig(nil))
	m = keys(m, keyEnter)

	lines := strings.Split(m.View(), "\n")
	row := lines[2]
	if !strings.Contains(row, "[Update] [Delete]") {
		t.Fatalf("editing row must show Update: %q", row)
	}
	// Focused input renders its value followed by the cursor cell.
	if !strings.HasPrefix(row, "Mikhael Glen  │ ") {
		t.Fatalf("editing row cells: %q", row)
	}
	if strings.Contains(lines[3], "[Update]") {
		t.Fatalf("other rows must keep Edit: %q", lines[3])
	}
}

func TestRender_SizedReservesStatusLine(t *testing.T) {
	cfg := demoConfig(nil)
	cfg.ShowHelp = true
	m := mustNew(t, cfg)
	m = m.SetSize(60, 10)

	lines := strings.Split(m.View(), "\n")
	if got, want := len(lines), 10; got != want {
		t.Fatalf("line count: got %d, want %d", got, want)
	}
	if status := lines[len(lines)-1]; !strings.Contains(status, "enter") {
		t.Fatalf("status line should show help: %q", status)
	}

	m = keys(m, keyCtrlD)
	lines = strings.Split(m.View(), "\n")
	if status := lines[len(lines)-1]; status != "Do you want to delete row 0? (y/n)" {
		t.Fatalf("status line: got %q", status)
	}
}

func TestRender_ViewportFollowsCursor(t *testing.T) {
	cfg := demoConfig(nil)
	for i := 0; i < 20; i++ {
		cfg.InitialData = append(cfg.InitialData, []string{"row", "x"})
	}
	m := mustNew(t, cfg)
	m = m.SetSize(60, 8)

	m = m.SetCursor(Cell{Row: m.Table().Len(), Col: 0})
	lines := strings.Split(m.View(), "\n")
	body := lines[2 : len(lines)-1]
	if last := body[len(body)-1]; !strings.Contains(last, "[Add] [Clear]") {
		t.Fatalf("new-row line should be visible at the bottom: %q", last)
	}
}

func TestRender_FocusedCellProducesANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	cfg := demoConfig(nil)
	cfg.Style = Style{CellFocused: r.NewStyle().Reverse(true)}
	m := mustNew(t, cfg)

	if got := m.View(); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences for the focused cell, got %q", got)
	}

	m = m.Blur()
	if got := m.View(); strings.Contains(got, "\x1b[") {
		t.Fatalf("blurred table must not highlight, got %q", got)
	}
}

func TestRender_TruncatesWideCells(t *testing.T) {
	cfg := demoConfig(nil)
	cfg.MaxColumnWidth = 8
	cfg.InitialData = [][]string{{"Bartholomew", "Featherstonehaugh"}}
	m := mustNew(t, cfg)

	row := strings.Split(m.View(), "\n")[2]
	if !strings.HasPrefix(row, "Barthol… │ Feather… │ ") {
		t.Fatalf("row: got %q", row)
	}
}

func TestRender_InputCursorFollowsPosition(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	cfg := wordConfig()
	cfg.Style = Style{Cursor: r.NewStyle().Reverse(true)}
	m := mustNew(t, cfg)

	m = keys(m, keyEnter)
	if row := strings.Split(m.View(), "\n")[2]; !strings.HasPrefix(row, "hello\x1b[7m \x1b[0m") {
		t.Fatalf("cursor at end: got %q", row)
	}

	m = keys(m, keyHome)
	if row := strings.Split(m.View(), "\n")[2]; !strings.HasPrefix(row, "\x1b[7mh\x1b[0mello ") {
		t.Fatalf("cursor at start: got %q", row)
	}
}

func TestRender_DeleteDialogOverBody(t *testing.T) {
	m := mustNew(t, demoConfig(nil))
	m = m.SetSize(60, 10)

	bodyHas := func(m Model, s string) bool {
		lines := strings.Split(m.View(), "\n")
		for _, line := range lines[2 : len(lines)-1] {
			if strings.Contains(line, s) {
				return true
			}
		}
		return false
	}

	m = keys(m, keyCtrlD)
	if !bodyHas(m, "Do you want to delete row 0?") {
		t.Fatalf("dialog missing from body:\n%s", m.View())
	}
	if !bodyHas(m, "y delete") {
		t.Fatalf("dialog must list its keys:\n%s", m.View())
	}

	m = keys(m, runes("n"))
	if bodyHas(m, "Do you want to delete") {
		t.Fatalf("dialog must close after the answer:\n%s", m.View())
	}
}
