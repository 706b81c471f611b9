package tableview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Cursor blink and other input-owned messages.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	km := m.cfg.KeyMap

	// The delete prompt is modal: nothing else runs until it is answered.
	if m.pending.active {
		switch {
		case key.Matches(msg, km.ConfirmYes):
			m.resolveDelete(true)
		case key.Matches(msg, km.ConfirmNo):
			m.resolveDelete(false)
		default:
			return m, nil
		}
		m.afterChange()
		return m, nil
	}

	// Paste always goes to the focused input as literal text.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, km.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, km.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, km.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, km.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, km.Next):
		m.step(1)
	case key.Matches(msg, km.Prev):
		m.step(-1)

	case key.Matches(msg, km.Activate):
		m.activate()
	case key.Matches(msg, km.Cancel):
		m.cancelEdit(m.cursor.Row)

	case key.Matches(msg, km.Delete):
		m.requestDelete(m.cursor.Row)
	case key.Matches(msg, km.Add):
		m.addRow()
	case key.Matches(msg, km.Clear):
		m.clearNewRow()

	case key.Matches(msg, km.Copy):
		m.copyCell()
	case key.Matches(msg, km.Paste):
		m.pasteCell()

	default:
		return m.updateInput(msg)
	}

	m.afterChange()
	return m, nil
}

// updateInput forwards msg to the text input bound to the focused cell.
func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.isInput(m.cursor) {
		return m, nil
	}
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.setInputValue(v)
	}
	m.afterChange()
	return m, cmd
}

func (m *Model) afterChange() {
	m.cursor = m.clampCell(m.cursor)
	m.syncInput()
	m.rebuildContent()
	m.followCursor()
}
