package table

// ChangeKind identifies the operation that produced a Change.
type ChangeKind uint8

const (
	ChangeBeginEdit ChangeKind = iota
	ChangeStagedCell
	ChangeCommitEdit
	ChangeCancelEdit
	ChangeDelete
	ChangeNewRowCell
	ChangeAdd
	ChangeClearNewRow
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeBeginEdit:
		return "begin_edit"
	case ChangeStagedCell:
		return "staged_cell"
	case ChangeCommitEdit:
		return "commit_edit"
	case ChangeCancelEdit:
		return "cancel_edit"
	case ChangeDelete:
		return "delete"
	case ChangeNewRowCell:
		return "new_row_cell"
	case ChangeAdd:
		return "add"
	case ChangeClearNewRow:
		return "clear_new_row"
	default:
		return "unknown"
	}
}

// Change is a versioned record of one effective mutation.
//
// Row is -1 for operations on the new-row buffer; Col is -1 when the
// operation is not cell-scoped. Before and After hold the affected row
// (data row, staged row or new-row buffer) around the mutation.
type Change struct {
	Kind              ChangeKind
	Row               int
	Col               int
	VersionBefore     uint64
	VersionAfter      uint64
	DataVersionBefore uint64
	DataVersionAfter  uint64
	Before            Row
	After             Row
}

// DataChanged reports whether the change replaced the data set.
func (c Change) DataChanged() bool {
	return c.DataVersionAfter != c.DataVersionBefore
}

type changeBuilder struct {
	kind              ChangeKind
	row, col          int
	versionBefore     uint64
	dataVersionBefore uint64
	before            Row
}

// LastChange returns the most recent effective change.
func (t *Table) LastChange() (Change, bool) {
	if !t.hasLastChange {
		return Change{}, false
	}
	return cloneChange(t.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.Before = in.Before.Clone()
	out.After = in.After.Clone()
	return out
}

func (t *Table) beginChange(kind ChangeKind, row, col int, before Row) changeBuilder {
	return changeBuilder{
		kind:              kind,
		row:               row,
		col:               col,
		versionBefore:     t.version,
		dataVersionBefore: t.dataVersion,
		before:            before.Clone(),
	}
}

func (t *Table) commitChange(cb changeBuilder, after Row) {
	if t.version == cb.versionBefore {
		return
	}
	t.lastChange = Change{
		Kind:              cb.kind,
		Row:               cb.row,
		Col:               cb.col,
		VersionBefore:     cb.versionBefore,
		VersionAfter:      t.version,
		DataVersionBefore: cb.dataVersionBefore,
		DataVersionAfter:  t.dataVersion,
		Before:            cb.before,
		After:             after.Clone(),
	}
	t.hasLastChange = true
}
