package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/edtable/tableview"
)

type updateStatus struct {
	count   int
	rows    int
	lastErr error
}

func (s *updateStatus) record(data [][]string) {
	s.count++
	s.rows = len(data)
}

type model struct {
	table  tableview.Model
	status *updateStatus
}

func (m model) Init() tea.Cmd { return m.table.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table = m.table.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	line := fmt.Sprintf("updates: %d  rows: %d  ctrl+q quits", m.status.count, m.status.rows)
	if m.status.lastErr != nil {
		line += "  save failed: " + m.status.lastErr.Error()
	}
	return m.table.View() + "\n" + line
}
