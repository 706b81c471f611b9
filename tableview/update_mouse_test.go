package tableview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func click(m Model, x, y int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func TestMouse_ClickEditButton(t *testing.T) {
	u := &updates{}
	m := mustNew(t, demoConfig(u))

	// "Mikhael Glen │ Lataza    │ [Edit] [Delete]": Edit starts at x=27.
	m = click(m, 28, 2)
	if !m.Table().IsEditing(0) {
		t.Fatalf("click on Edit must begin editing row 0")
	}
	if got, want := m.Cursor(), (Cell{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
}

func TestMouse_ClickDeleteOpensPrompt(t *testing.T) {
	m := mustNew(t, demoConfig(nil))

	m = click(m, 35, 3)
	prompt, ok := m.ConfirmPending()
	if !ok || prompt != "Do you want to delete row 1?" {
		t.Fatalf("prompt: got %q ok=%v", prompt, ok)
	}

	// Clicks are ignored while the prompt is open.
	m = click(m, 28, 2)
	if m.Table().IsEditing(0) {
		t.Fatalf("click must not act while prompting")
	}
}

func TestMouse_ClickCellFocusesWithoutAction(t *testing.T) {
	u := &updates{}
	m := mustNew(t, demoConfig(u))

	m = click(m, 16, 3)
	if got, want := m.Cursor(), (Cell{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor: got %+v, want %+v", got, want)
	}
	if m.Table().IsEditing(1) {
		t.Fatalf("clicking a cell must not begin editing")
	}

	m = click(m, 2, 4)
	if !m.input.Focused() {
		t.Fatalf("clicking the new-row line must focus its input")
	}
}

func TestMouse_MissesAreIgnored(t *testing.T) {
	m := mustNew(t, demoConfig(nil))
	for _, p := range [][2]int{{0, 0}, {13, 2}, {50, 2}, {0, 9}} {
		m = click(m, p[0], p[1])
		if got, want := m.Cursor(), (Cell{}); got != want {
			t.Fatalf("click %v moved cursor to %+v", p, got)
		}
	}
}
