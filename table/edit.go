package table

// BeginEdit stages a copy of row i for editing.
//
// A row that is already being edited keeps its staged values.
func (t *Table) BeginEdit(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	if t.edits[i].Editing {
		return nil
	}

	change := t.beginChange(ChangeBeginEdit, i, -1, t.rows[i])
	t.edits[i] = Editing(t.rows[i].Clone())
	t.version++
	t.commitChange(change, t.edits[i].Staged)
	return nil
}

// SetStagedCell sets the staged value at (i, j). Row i must be editing.
func (t *Table) SetStagedCell(i, j int, v string) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	if err := t.checkColumn(j); err != nil {
		return err
	}
	if !t.edits[i].Editing {
		return ErrNotEditing
	}
	staged := t.edits[i].Staged
	if staged[j] == v {
		return nil
	}

	change := t.beginChange(ChangeStagedCell, i, j, staged)
	next := staged.Clone()
	next[j] = v
	t.edits[i] = Editing(next)
	t.version++
	t.commitChange(change, next)
	return nil
}

// CommitEdit replaces data row i with its staged copy and leaves edit mode.
//
// The data set is replaced even when no staged cell changed.
func (t *Table) CommitEdit(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	if !t.edits[i].Editing {
		return ErrNotEditing
	}

	change := t.beginChange(ChangeCommitEdit, i, -1, t.rows[i])
	rows := append([]Row(nil), t.rows...)
	rows[i] = t.edits[i].Staged.Clone()
	t.rows = rows
	t.edits[i] = NotEditing
	t.version++
	t.dataVersion++
	t.commitChange(change, t.rows[i])
	t.notify()
	return nil
}

// CancelEdit discards the staged copy of row i.
func (t *Table) CancelEdit(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	if !t.edits[i].Editing {
		return nil
	}

	change := t.beginChange(ChangeCancelEdit, i, -1, t.edits[i].Staged)
	t.edits[i] = NotEditing
	t.version++
	t.commitChange(change, t.rows[i])
	return nil
}

// Delete asks confirm and, when accepted, removes row i and its edit state.
// Rows after i shift down by one. A nil confirm accepts.
func (t *Table) Delete(i int, confirm ConfirmFunc) (bool, error) {
	if err := t.checkRow(i); err != nil {
		return false, err
	}
	if confirm != nil && !confirm(t.deletePrompt(i)) {
		return false, nil
	}
	t.deleteRow(i)
	return true, nil
}

// DeleteConfirmed removes row i without asking. Hosts that run their own
// confirmation flow call it after the user accepted.
func (t *Table) DeleteConfirmed(i int) error {
	if err := t.checkRow(i); err != nil {
		return err
	}
	t.deleteRow(i)
	return nil
}

// DeletePrompt returns the confirmation question for row i.
func (t *Table) DeletePrompt(i int) string { return t.deletePrompt(i) }

func (t *Table) deleteRow(i int) {
	change := t.beginChange(ChangeDelete, i, -1, t.rows[i])

	rows := make([]Row, 0, len(t.rows)-1)
	rows = append(rows, t.rows[:i]...)
	rows = append(rows, t.rows[i+1:]...)
	edits := make([]EditState, 0, len(t.edits)-1)
	edits = append(edits, t.edits[:i]...)
	edits = append(edits, t.edits[i+1:]...)

	t.rows = rows
	t.edits = edits
	t.version++
	t.dataVersion++
	t.commitChange(change, nil)
	t.notify()
}

// SetNewRowCell sets position j of the new-row buffer.
func (t *Table) SetNewRowCell(j int, v string) error {
	if err := t.checkColumn(j); err != nil {
		return err
	}
	if t.newRow[j] == v {
		return nil
	}

	change := t.beginChange(ChangeNewRowCell, -1, j, t.newRow)
	next := t.newRow.Clone()
	next[j] = v
	t.newRow = next
	t.version++
	t.commitChange(change, next)
	return nil
}

// Add appends the new-row buffer to the data set and resets the buffer.
func (t *Table) Add() {
	added := t.newRow.Clone()
	change := t.beginChange(ChangeAdd, len(t.rows), -1, nil)

	rows := make([]Row, 0, len(t.rows)+1)
	rows = append(rows, t.rows...)
	t.rows = append(rows, added)
	t.edits = append(append([]EditState(nil), t.edits...), NotEditing)
	t.newRow = emptyRow(len(t.columns))
	t.version++
	t.dataVersion++
	t.commitChange(change, added)
	t.notify()
}

// ClearNewRow resets the new-row buffer to empty strings.
func (t *Table) ClearNewRow() {
	if t.newRow.Equal(emptyRow(len(t.columns))) {
		return
	}

	change := t.beginChange(ChangeClearNewRow, -1, -1, t.newRow)
	t.newRow = emptyRow(len(t.columns))
	t.version++
	t.commitChange(change, t.newRow)
}
