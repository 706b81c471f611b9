package tableview

import (
	"log/slog"
	"strings"
)

// Clipboard provides clipboard integration for cell values.
//
// Errors are logged and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m *Model) copyCell() {
	if m.cfg.Clipboard == nil || m.cursor.Col >= m.actionsCol() {
		return
	}
	v, _ := m.cellValue(m.cursor)
	if err := m.cfg.Clipboard.WriteText(v); err != nil {
		m.cfg.Logger.Warn("clipboard write failed", slog.Any("err", err))
	}
}

// pasteCell inserts clipboard text at the input cursor. Cells are single
// line, so line breaks become spaces.
func (m *Model) pasteCell() {
	if m.cfg.Clipboard == nil || !m.isInput(m.cursor) {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("clipboard read failed", slog.Any("err", err))
		return
	}
	if s == "" {
		return
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)

	v, _ := m.cellValue(m.cursor)
	pos := m.inputPosition(v)
	r := []rune(v)
	m.input.SetValue(string(r[:pos]) + s + string(r[pos:]))
	m.input.SetCursor(pos + len([]rune(s)))
	m.setInputValue(m.input.Value())
}
