// Package tablefile loads table definitions (columns, actions label and
// initial rows) from TOML, YAML or JSON files.
package tablefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/edtable/table"
	"github.com/iw2rmb/edtable/tableview"
)

// ErrUnsupportedFormat is returned for file extensions Load cannot decode.
var ErrUnsupportedFormat = errors.New("tablefile: unsupported format")

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Definition describes one table.
type Definition struct {
	Columns           []string   `toml:"columns" yaml:"columns" json:"columns"`
	ActionsColumnName string     `toml:"actions_column_name,omitempty" yaml:"actions_column_name,omitempty" json:"actions_column_name,omitempty"`
	Normalize         bool       `toml:"normalize,omitempty" yaml:"normalize,omitempty" json:"normalize,omitempty"`
	Rows              [][]string `toml:"rows" yaml:"rows" json:"rows"`
}

// Demo returns the two-column people table used by the demo programs.
func Demo() Definition {
	return Definition{
		Columns: []string{"first name", "last name"},
		Rows: [][]string{
			{"Mikhael Glen", "Lataza"},
			{"Marigold", "Caitor"},
		},
	}
}

// Load reads and validates the definition at path.
func Load(path string) (Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Definition{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read table definition: %w", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes and validates a definition.
func Parse(data []byte, format Format) (Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&def); err != nil {
			return Definition{}, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return Definition{}, fmt.Errorf("parse json: %w", err)
		}
	default:
		return Definition{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate applies the same checks table.New does, so bad files fail at
// load time.
func (d Definition) Validate() error {
	if len(d.Columns) == 0 {
		return table.ErrNoColumns
	}
	if d.Normalize {
		return nil
	}
	for i, r := range d.Rows {
		if len(r) != len(d.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(r), len(d.Columns), table.ErrRowWidth)
		}
	}
	return nil
}

// ViewConfig returns a tableview.Config seeded from d.
func (d Definition) ViewConfig() tableview.Config {
	return tableview.Config{
		Columns:           append([]string(nil), d.Columns...),
		InitialData:       d.Rows,
		ActionsColumnName: d.ActionsColumnName,
		Normalize:         d.Normalize,
	}
}
