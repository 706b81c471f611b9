package tableview

import "github.com/iw2rmb/edtable/internal/grapheme"

const (
	colSep = " │ "
	// Header and separator lines above the body.
	headerLines = 2
)

var colSepWidth = grapheme.Width(colSep)

// layout holds horizontal cell geometry in terminal cells.
type layout struct {
	widths       []int
	starts       []int
	actionsStart int
	actionsWidth int
}

func (m *Model) computeLayout() layout {
	cols := m.tbl.Columns()
	l := layout{
		widths: make([]int, len(cols)),
		starts: make([]int, len(cols)),
	}

	for j, name := range cols {
		w := grapheme.Width(name)
		for row := 0; row <= m.newRowIndex(); row++ {
			v, input := m.cellValue(Cell{Row: row, Col: j})
			cw := grapheme.Width(v)
			if input {
				cw++ // cursor
			}
			if cw > w {
				w = cw
			}
		}
		l.widths[j] = clampInt(w, m.cfg.MinColumnWidth, m.cfg.MaxColumnWidth)
	}

	x := 0
	for j, w := range l.widths {
		l.starts[j] = x
		x += w + colSepWidth
	}
	l.actionsStart = x

	l.actionsWidth = grapheme.Width(m.cfg.ActionsColumnName)
	for _, pair := range [][2]string{
		{labelEdit, labelDelete},
		{labelUpdate, labelDelete},
		{labelAdd, labelClear},
	} {
		if w := buttonsWidth(pair[0], pair[1]); w > l.actionsWidth {
			l.actionsWidth = w
		}
	}
	return l
}

const (
	labelEdit   = "Edit"
	labelUpdate = "Update"
	labelDelete = "Delete"
	labelAdd    = "Add"
	labelClear  = "Clear"
)

func buttonText(label string) string { return "[" + label + "]" }

func buttonsWidth(primary, secondary string) int {
	return grapheme.Width(buttonText(primary)) + 1 + grapheme.Width(buttonText(secondary))
}

// buttonLabels returns the action labels shown on a body line.
func (m *Model) buttonLabels(row int) (primary, secondary string) {
	if row == m.newRowIndex() {
		return labelAdd, labelClear
	}
	if m.tbl.IsEditing(row) {
		return labelUpdate, labelDelete
	}
	return labelEdit, labelDelete
}

// hitTest maps component-local coordinates to a focusable position.
//
// (0,0) is the top-left of the header. Clicks on the header, separators or
// empty space do not hit anything.
func (m *Model) hitTest(x, y int) (Cell, bool) {
	if x < 0 || y < headerLines {
		return Cell{}, false
	}
	line := y - headerLines
	if m.sized {
		if line >= m.viewport.Height {
			return Cell{}, false
		}
		line += m.viewport.YOffset
	}
	if line > m.newRowIndex() {
		return Cell{}, false
	}

	l := m.computeLayout()
	for j, start := range l.starts {
		if x >= start && x < start+l.widths[j] {
			return Cell{Row: line, Col: j}, true
		}
	}

	primary, secondary := m.buttonLabels(line)
	pw := grapheme.Width(buttonText(primary))
	if x >= l.actionsStart && x < l.actionsStart+pw {
		return Cell{Row: line, Col: m.actionsCol()}, true
	}
	ss := l.actionsStart + pw + 1
	if x >= ss && x < ss+grapheme.Width(buttonText(secondary)) {
		return Cell{Row: line, Col: m.lastCol()}, true
	}
	return Cell{}, false
}
