package tableview

import "log/slog"

// activate runs the action of the focused position.
func (m *Model) activate() {
	c := m.cursor
	newRow := c.Row == m.newRowIndex()

	switch {
	case c.Col == m.actionsCol() && newRow:
		m.addRow()
	case c.Col == m.actionsCol():
		if m.tbl.IsEditing(c.Row) {
			m.commitEdit(c.Row)
		} else {
			m.beginEdit(c.Row)
		}
	case c.Col == m.lastCol() && newRow:
		m.clearNewRow()
	case c.Col == m.lastCol():
		m.requestDelete(c.Row)
	case newRow:
		m.addRow()
	case m.tbl.IsEditing(c.Row):
		m.commitEdit(c.Row)
	default:
		m.beginEdit(c.Row)
	}
}

func (m *Model) beginEdit(row int) {
	if err := m.tbl.BeginEdit(row); err != nil {
		m.cfg.Logger.Warn("begin edit failed", slog.Int("row", row), slog.Any("err", err))
		return
	}
	m.recordChange()
}

func (m *Model) commitEdit(row int) {
	if err := m.tbl.CommitEdit(row); err != nil {
		m.cfg.Logger.Warn("commit edit failed", slog.Int("row", row), slog.Any("err", err))
		return
	}
	m.recordChange()
}

func (m *Model) cancelEdit(row int) {
	if !m.tbl.IsEditing(row) {
		return
	}
	if err := m.tbl.CancelEdit(row); err != nil {
		m.cfg.Logger.Warn("cancel edit failed", slog.Int("row", row), slog.Any("err", err))
		return
	}
	m.recordChange()
}

func (m *Model) addRow() {
	m.tbl.Add()
	m.recordChange()
	m.cursor = Cell{Row: m.newRowIndex(), Col: 0}
}

func (m *Model) clearNewRow() {
	m.tbl.ClearNewRow()
	m.recordChange()
}

// requestDelete asks for confirmation through Config.Confirm, or opens the
// modal prompt when no confirmer is configured.
func (m *Model) requestDelete(row int) {
	if row < 0 || row >= m.tbl.Len() {
		return
	}
	if m.cfg.Confirm == nil {
		m.pending = pendingDelete{active: true, row: row, prompt: m.tbl.DeletePrompt(row)}
		m.cfg.Logger.Debug("delete prompt", slog.Int("row", row))
		return
	}

	ok, err := m.tbl.Delete(row, m.cfg.Confirm)
	if err != nil {
		m.cfg.Logger.Warn("delete failed", slog.Int("row", row), slog.Any("err", err))
		return
	}
	m.cfg.Logger.Debug("delete answered", slog.Int("row", row), slog.Bool("confirmed", ok))
	if ok {
		m.recordChange()
		m.cursor = m.clampCell(m.cursor)
	}
}

func (m *Model) resolveDelete(confirmed bool) {
	row := m.pending.row
	m.pending = pendingDelete{}
	m.cfg.Logger.Debug("delete answered", slog.Int("row", row), slog.Bool("confirmed", confirmed))
	if !confirmed {
		return
	}
	if err := m.tbl.DeleteConfirmed(row); err != nil {
		m.cfg.Logger.Warn("delete failed", slog.Int("row", row), slog.Any("err", err))
		return
	}
	m.recordChange()
	m.cursor = m.clampCell(m.cursor)
}

// setInputValue writes the text input value back to the bound cell.
func (m *Model) setInputValue(v string) {
	c := m.cursor
	var err error
	if c.Row == m.newRowIndex() {
		err = m.tbl.SetNewRowCell(c.Col, v)
	} else {
		err = m.tbl.SetStagedCell(c.Row, c.Col, v)
	}
	if err != nil {
		m.cfg.Logger.Warn("cell change failed", slog.Int("row", c.Row), slog.Int("col", c.Col), slog.Any("err", err))
		return
	}
	if m.hasBound && m.bound == c {
		m.boundValue = v
	}
	m.recordChange()
}

// moveCursor moves focus by dRow rows and dCol columns, clamped.
func (m *Model) moveCursor(dRow, dCol int) {
	m.cursor = m.clampCell(Cell{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol})
}

// step moves focus in reading order, wrapping between lines.
func (m *Model) step(dir int) {
	width := m.lastCol() + 1
	total := (m.newRowIndex() + 1) * width
	idx := m.cursor.Row*width + m.cursor.Col + dir
	idx = ((idx % total) + total) % total
	m.cursor = Cell{Row: idx / width, Col: idx % width}
}
