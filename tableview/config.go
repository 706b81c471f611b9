package tableview

import (
	"log/slog"

	"github.com/iw2rmb/edtable/table"
)

// DefaultActionsColumnName labels the actions header cell when
// Config.ActionsColumnName is empty.
const DefaultActionsColumnName = "actions"

const (
	defaultMinColumnWidth = 8
	defaultMaxColumnWidth = 32
)

// Config configures the table Model.
type Config struct {
	// Columns and InitialData are read once by New.
	Columns     []string
	InitialData [][]string

	ActionsColumnName string

	// OnUpdate receives a copy of the full data set once from New and after
	// every add, committed edit and confirmed delete.
	OnUpdate func(data [][]string)

	// OnChange receives every effective state change, including staged and
	// new-row cell edits that do not fire OnUpdate.
	OnChange func(table.Change)

	// Normalize pads or truncates initial rows instead of rejecting them.
	Normalize bool

	// Confirm, when set, is called synchronously before a row is deleted.
	// When nil the component shows its own modal prompt.
	Confirm table.ConfirmFunc

	// DeletePrompt formats the confirmation text for a row. Nil selects
	// table.DefaultDeletePrompt.
	DeletePrompt func(row int) string

	// Cell width bounds in terminal cells. Zero selects the defaults.
	MinColumnWidth int
	MaxColumnWidth int

	ShowHelp bool

	Clipboard Clipboard

	Style  Style
	KeyMap KeyMap

	// Logger receives debug records for every operation. Nil discards.
	Logger *slog.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.ActionsColumnName == "" {
		cfg.ActionsColumnName = DefaultActionsColumnName
	}
	if cfg.MinColumnWidth <= 0 {
		cfg.MinColumnWidth = defaultMinColumnWidth
	}
	if cfg.MaxColumnWidth <= 0 {
		cfg.MaxColumnWidth = defaultMaxColumnWidth
	}
	if cfg.MaxColumnWidth < cfg.MinColumnWidth {
		cfg.MaxColumnWidth = cfg.MinColumnWidth
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
