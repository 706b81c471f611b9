package tableview

import "github.com/charmbracelet/lipgloss"

// Style controls the table's rendering.
type Style struct {
	Header    lipgloss.Style
	Separator lipgloss.Style

	Cell        lipgloss.Style
	CellFocused lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Cursor       lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Dialog frames the delete confirmation drawn over the table.
	Dialog lipgloss.Style
	Prompt lipgloss.Style
}

func DefaultStyle() Style {
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Header:        lipgloss.NewStyle().Bold(true),
		Separator:     sep,
		Cell:          lipgloss.NewStyle(),
		CellFocused:   lipgloss.NewStyle().Reverse(true),
		Input:         lipgloss.NewStyle().Underline(true),
		InputFocused:  lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("212")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ButtonFocused: lipgloss.NewStyle().Reverse(true).Bold(true),
		Dialog:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}
