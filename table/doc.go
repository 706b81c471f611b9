// Package table implements the pure state model behind the editable table
// component: the data set, per-row edit state and the new-row buffer.
//
// Rows and columns are 0-based indices. All operations are synchronous and
// owned by a single caller; a Table is not safe for concurrent use.
package table
