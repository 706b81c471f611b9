package tableview

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/edtable/table"
)

// Cell addresses a focusable position.
//
// Row is a data row index, or Table().Len() for the new-row line. Col is a
// column index; the two action buttons follow the data columns at
// Col == column count (Edit/Update or Add) and Col == column count+1
// (Delete or Clear).
type Cell struct {
	Row int
	Col int
}

type pendingDelete struct {
	active bool
	row    int
	prompt string
}

// Model is a Bubble Tea component that renders and edits a table.Table.
type Model struct {
	cfg Config
	tbl *table.Table

	focused bool
	cursor  Cell

	input textinput.Model
	// bound is the cell the input was last loaded from.
	bound      Cell
	boundValue string
	hasBound   bool

	seenVersion uint64

	pending pendingDelete

	sized    bool
	width    int
	viewport viewport.Model
	help     help.Model
}

// New builds the table from cfg and fires the mount notification.
func New(cfg Config) (Model, error) {
	cfg = normalizeConfig(cfg)

	logger := cfg.Logger
	host := cfg.OnUpdate
	tbl, err := table.New(cfg.Columns, cfg.InitialData, table.Options{
		Normalize:    cfg.Normalize,
		DeletePrompt: cfg.DeletePrompt,
		OnUpdate: func(data [][]string) {
			logger.Debug("data set updated", slog.Int("rows", len(data)))
			if host != nil {
				host(data)
			}
		},
	})
	if err != nil {
		return Model{}, fmt.Errorf("tableview: %w", err)
	}

	in := textinput.New()
	in.Prompt = ""

	m := Model{
		cfg:         cfg,
		tbl:         tbl,
		focused:     true,
		input:       in,
		seenVersion: tbl.Version(),
		viewport:    viewport.New(0, 0),
		help:        help.New(),
	}
	m.syncInput()
	m.rebuildContent()
	return m, nil
}

// Table returns the underlying state model.
func (m Model) Table() *table.Table { return m.tbl }

// Data returns a copy of the current data set.
func (m Model) Data() [][]string { return m.tbl.Data() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.sized = true
	m.width = width
	m.help.Width = width

	// Header and separator above, status line below.
	body := height - 3
	if body < 0 {
		body = 0
	}
	m.viewport.Width = width
	m.viewport.Height = body

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.syncInput()
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.syncInput()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Cursor returns the focused position.
func (m Model) Cursor() Cell { return m.cursor }

// SetCursor moves focus to c, clamped into the table.
func (m Model) SetCursor(c Cell) Model {
	m.cursor = m.clampCell(c)
	m.syncInput()
	m.rebuildContent()
	m.followCursor()
	return m
}

// ConfirmPending reports whether the delete prompt is shown, and its text.
func (m Model) ConfirmPending() (string, bool) {
	if !m.pending.active {
		return "", false
	}
	return m.pending.prompt, true
}

func (m Model) actionsCol() int { return m.tbl.ColumnCount() }

func (m Model) lastCol() int { return m.tbl.ColumnCount() + 1 }

func (m Model) newRowIndex() int { return m.tbl.Len() }

func (m Model) clampCell(c Cell) Cell {
	c.Row = clampInt(c.Row, 0, m.newRowIndex())
	c.Col = clampInt(c.Col, 0, m.lastCol())
	return c
}

// isInput reports whether c is a cell rendered as an input.
func (m Model) isInput(c Cell) bool {
	if c.Col < 0 || c.Col >= m.tbl.ColumnCount() {
		return false
	}
	return c.Row == m.newRowIndex() || m.tbl.IsEditing(c.Row)
}

// cellValue returns the value shown at c and whether it is an input.
func (m Model) cellValue(c Cell) (string, bool) {
	if c.Row == m.newRowIndex() {
		r := m.tbl.NewRow()
		if c.Col < 0 || c.Col >= len(r) {
			return "", true
		}
		return r[c.Col], true
	}
	if v, ok := m.tbl.StagedCell(c.Row, c.Col); ok {
		return v, true
	}
	v, _ := m.tbl.Cell(c.Row, c.Col)
	return v, false
}

// syncInput binds the text input to the focused input cell. The input keeps
// its cursor while it stays on the same cell and its value matches the table.
func (m *Model) syncInput() {
	if !m.focused || m.pending.active || !m.isInput(m.cursor) {
		m.input.Blur()
		m.hasBound = false
		return
	}
	v, _ := m.cellValue(m.cursor)
	if !m.isBoundTo(m.cursor, v) {
		m.input.SetValue(v)
		m.input.CursorEnd()
		m.bound, m.boundValue, m.hasBound = m.cursor, v, true
	}
	_ = m.input.Focus()
}

// inputPosition returns the cursor offset, in runes, for the focused input
// showing v.
func (m Model) inputPosition(v string) int {
	n := len([]rune(v))
	if !m.isBoundTo(m.cursor, v) {
		return n
	}
	return clampInt(m.input.Position(), 0, n)
}

func (m Model) isBoundTo(c Cell, v string) bool {
	return m.hasBound && m.bound == c && m.boundValue == v
}

// recordChange reports the table's latest change if it has not been seen.
func (m *Model) recordChange() {
	c, ok := m.tbl.LastChange()
	if !ok || c.VersionAfter <= m.seenVersion {
		return
	}
	m.seenVersion = c.VersionAfter
	m.cfg.Logger.Debug("table change",
		slog.String("kind", c.Kind.String()),
		slog.Int("row", c.Row),
		slog.Int("col", c.Col),
		slog.Uint64("version", c.VersionAfter),
		slog.Uint64("data_version", c.DataVersionAfter),
	)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(c)
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderBody())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if m.cursor.Row < y {
		m.viewport.SetYOffset(m.cursor.Row)
		return
	}
	if m.cursor.Row >= y+h {
		m.viewport.SetYOffset(m.cursor.Row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
