// Package sink persists data sets received from the table's update
// notifications.
//
// Every writer replaces its file atomically, so readers never observe a
// partially written data set.
package sink

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/edtable/tablefile"
)

// ErrUnsupportedFormat is returned by New for unknown file extensions.
var ErrUnsupportedFormat = errors.New("sink: unsupported format")

// Sink stores one complete data set.
type Sink interface {
	Write(columns []string, data [][]string) error
}

// New returns the file sink matching the extension of path: .json,
// .yaml/.yml, .csv or .xlsx.
func New(path string) (Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON{Path: path}, nil
	case ".yaml", ".yml":
		return YAML{Path: path}, nil
	case ".csv":
		return CSV{Path: path}, nil
	case ".xlsx":
		return XLSX{Path: path}, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Func adapts s to a table update callback. Write errors go to onErr when
// it is set.
func Func(s Sink, columns []string, onErr func(error)) func(data [][]string) {
	cols := append([]string(nil), columns...)
	return func(data [][]string) {
		if err := s.Write(cols, data); err != nil && onErr != nil {
			onErr(err)
		}
	}
}

func document(columns []string, data [][]string) tablefile.Definition {
	rows := data
	if rows == nil {
		rows = [][]string{}
	}
	return tablefile.Definition{Columns: columns, Rows: rows}
}

func writeFile(path string, b []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// JSON writes a table definition document that tablefile.Load can read
// back.
type JSON struct{ Path string }

func (s JSON) Write(columns []string, data [][]string) error {
	b, err := json.MarshalIndent(document(columns, data), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return writeFile(s.Path, append(b, '\n'))
}

// YAML writes a table definition document that tablefile.Load can read
// back.
type YAML struct{ Path string }

func (s YAML) Write(columns []string, data [][]string) error {
	b, err := yaml.Marshal(document(columns, data))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return writeFile(s.Path, b)
}

// CSV writes the column labels as the header record followed by one record
// per row.
type CSV struct{ Path string }

func (s CSV) Write(columns []string, data [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	if err := w.WriteAll(data); err != nil {
		return fmt.Errorf("encode csv: %w", err)
	}
	return writeFile(s.Path, buf.Bytes())
}

// XLSX writes a workbook whose first sheet holds the header row and the
// data rows.
type XLSX struct {
	Path  string
	Sheet string // default "Sheet1"
}

func (s XLSX) Write(columns []string, data [][]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if s.Sheet != "" && s.Sheet != sheet {
		if err := f.SetSheetName(sheet, s.Sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		sheet = s.Sheet
	}

	header := append([]string(nil), columns...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := append([]string(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode xlsx: %w", err)
	}
	return writeFile(s.Path, buf.Bytes())
}
