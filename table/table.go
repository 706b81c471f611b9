package table

import "fmt"

// DefaultDeletePrompt formats the confirmation question asked before a row
// is deleted.
func DefaultDeletePrompt(row int) string {
	return fmt.Sprintf("Do you want to delete row %d?", row)
}

type Options struct {
	// OnUpdate is called once from New with the initial data set, then after
	// every Add, CommitEdit and confirmed Delete. It always receives a copy.
	OnUpdate UpdateFunc

	// Normalize pads or truncates initial rows to the column count instead
	// of rejecting them.
	Normalize bool

	// DeletePrompt overrides DefaultDeletePrompt.
	DeletePrompt func(row int) string
}

// Table owns the data set, edit state and new-row buffer.
type Table struct {
	columns []string
	rows    []Row
	edits   []EditState
	newRow  Row

	version     uint64
	dataVersion uint64

	opt Options

	lastChange    Change
	hasLastChange bool
}

// New seeds a table from columns and initialData and fires the mount
// notification.
//
// Both arguments are copied; later changes to them are not observed.
func New(columns []string, initialData [][]string, opt Options) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	rows := make([]Row, 0, len(initialData))
	for i, src := range initialData {
		r := Row(src).Clone()
		if len(r) != len(columns) {
			if !opt.Normalize {
				return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(r), len(columns), ErrRowWidth)
			}
			r = normalizeRow(r, len(columns))
		}
		rows = append(rows, r)
	}

	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    rows,
		edits:   make([]EditState, len(rows)),
		newRow:  emptyRow(len(columns)),
		opt:     opt,
	}
	t.notify()
	return t, nil
}

func normalizeRow(r Row, n int) Row {
	if len(r) > n {
		return r[:n:n]
	}
	out := emptyRow(n)
	copy(out, r)
	return out
}

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

func (t *Table) ColumnCount() int { return len(t.columns) }

// Len returns the number of rows in the data set.
func (t *Table) Len() int { return len(t.rows) }

// Version increments on every effective state change, including edit state
// and new-row buffer changes.
func (t *Table) Version() uint64 { return t.version }

// DataVersion increments only when the data set is replaced.
func (t *Table) DataVersion() uint64 { return t.dataVersion }

// Data returns a deep copy of the data set.
func (t *Table) Data() [][]string { return cloneData(t.rows) }

// Row returns a copy of data row i.
func (t *Table) Row(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	return t.rows[i].Clone(), true
}

// Cell returns the committed value at (row, col).
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.columns) {
		return "", false
	}
	return t.rows[row][col], true
}

// EditState returns a copy of the edit state of row i.
func (t *Table) EditState(i int) (EditState, bool) {
	if i < 0 || i >= len(t.edits) {
		return NotEditing, false
	}
	return t.edits[i].clone(), true
}

// IsEditing reports whether row i is in edit mode.
func (t *Table) IsEditing(i int) bool {
	return i >= 0 && i < len(t.edits) && t.edits[i].Editing
}

// StagedCell returns the staged value at (row, col) of an editing row.
func (t *Table) StagedCell(row, col int) (string, bool) {
	if !t.IsEditing(row) || col < 0 || col >= len(t.columns) {
		return "", false
	}
	return t.edits[row].Staged[col], true
}

// NewRow returns a copy of the new-row buffer.
func (t *Table) NewRow() Row { return t.newRow.Clone() }

func (t *Table) notify() {
	if t.opt.OnUpdate == nil {
		return
	}
	t.opt.OnUpdate(t.Data())
}

func (t *Table) deletePrompt(row int) string {
	if t.opt.DeletePrompt != nil {
		return t.opt.DeletePrompt(row)
	}
	return DefaultDeletePrompt(row)
}

func (t *Table) checkRow(i int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("row %d of %d: %w", i, len(t.rows), ErrRowOutOfRange)
	}
	return nil
}

func (t *Table) checkColumn(j int) error {
	if j < 0 || j >= len(t.columns) {
		return fmt.Errorf("column %d of %d: %w", j, len(t.columns), ErrColumnOutOfRange)
	}
	return nil
}
