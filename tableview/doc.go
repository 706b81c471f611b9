// Package tableview provides a Bubble Tea editable table component backed by
// the table package.
//
// The component renders a header row, one line per data row and a trailing
// input line for new rows. Each data row shows Edit/Update and Delete
// controls; the input line shows Add and Clear. Every change to the data
// set is reported to the host through Config.OnUpdate.
package tableview
