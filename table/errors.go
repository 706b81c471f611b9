package table

import "errors"

var (
	// ErrNoColumns is returned by New when the column set is empty.
	ErrNoColumns = errors.New("table: no columns")
	// ErrRowWidth is returned by New when an initial row does not match the
	// column count and normalization is disabled.
	ErrRowWidth = errors.New("table: row width does not match column count")

	ErrRowOutOfRange    = errors.New("table: row out of range")
	ErrColumnOutOfRange = errors.New("table: column out of range")
	ErrNotEditing       = errors.New("table: row is not being edited")
)
