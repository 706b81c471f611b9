package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/edtable"
	"github.com/iw2rmb/edtable/sink"
	"github.com/iw2rmb/edtable/tablefile"
	"github.com/iw2rmb/edtable/tableview"
)

type options struct {
	file     string
	out      string
	actions  string
	logFile  string
	logLevel string
	noHelp   bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "edtable-demo",
		Short:         "Edit a table in the terminal",
		Version:       edtable.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, closeLog, err := newModel(opts)
			if err != nil {
				return err
			}
			defer closeLog()

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}
	cmd.SetVersionTemplate(edtable.Banner("edtable-demo") + "\n")

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "table definition (.toml, .yaml, .json); defaults to the people demo")
	f.StringVarP(&opts.out, "out", "o", "", "persist every update to this file (.json, .yaml, .csv, .xlsx)")
	f.StringVar(&opts.actions, "actions-label", "", "label of the actions column")
	f.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.BoolVar(&opts.noHelp, "no-help", false, "hide the key help line")
	return cmd
}

// newModel wires the definition, sink and logger into the app model.
func newModel(opts options) (model, func(), error) {
	logger, closeLog, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return model{}, nil, err
	}

	def := tablefile.Demo()
	if opts.file != "" {
		if def, err = tablefile.Load(opts.file); err != nil {
			closeLog()
			return model{}, nil, err
		}
	}

	cfg := def.ViewConfig()
	if opts.actions != "" {
		cfg.ActionsColumnName = opts.actions
	}
	cfg.ShowHelp = !opts.noHelp
	cfg.Style = tableview.DefaultStyle()
	cfg.KeyMap = tableview.DefaultKeyMap()
	cfg.Logger = logger

	status := &updateStatus{}
	var persist func([][]string)
	if opts.out != "" {
		s, err := sink.New(opts.out)
		if err != nil {
			closeLog()
			return model{}, nil, err
		}
		persist = sink.Func(s, cfg.Columns, func(err error) {
			status.lastErr = err
			logger.Error("persist data set", slog.String("path", opts.out), slog.Any("err", err))
		})
	}
	cfg.OnUpdate = func(data [][]string) {
		status.record(data)
		if persist != nil {
			persist(data)
		}
	}

	tv, err := tableview.New(cfg)
	if err != nil {
		closeLog()
		return model{}, nil, err
	}
	logger.Info("table mounted", slog.Int("columns", len(cfg.Columns)), slog.Int("rows", tv.Table().Len()))
	return model{table: tv, status: status}, closeLog, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
