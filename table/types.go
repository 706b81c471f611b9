package table

// Row is one ordered sequence of cell values, aligned to the column set.
type Row []string

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Equal reports whether r and other hold the same cells in the same order.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// EditState is the per-row edit variant: either not editing, or editing with
// a staged copy of the row's cells.
type EditState struct {
	Editing bool
	Staged  Row
}

// NotEditing is the zero EditState.
var NotEditing = EditState{}

// Editing returns the editing variant holding staged.
func Editing(staged Row) EditState {
	return EditState{Editing: true, Staged: staged}
}

func (s EditState) clone() EditState {
	if !s.Editing {
		return NotEditing
	}
	return Editing(s.Staged.Clone())
}

// ConfirmFunc asks the user a yes/no question and blocks until answered.
type ConfirmFunc func(prompt string) bool

// UpdateFunc receives the complete current data set.
type UpdateFunc func(data [][]string)

func emptyRow(n int) Row {
	return make(Row, n)
}

func cloneData(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string(r.Clone())
	}
	return out
}
