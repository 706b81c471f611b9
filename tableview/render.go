package tableview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/edtable/internal/grapheme"
)

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteByte('\n')
	var body string
	if m.sized {
		body = m.viewport.View()
	} else {
		body = m.renderBody()
	}
	if m.pending.active {
		body = m.renderConfirmDialog(body)
	}
	sb.WriteString(body)
	if status := m.statusLine(); status != "" || m.sized {
		sb.WriteByte('\n')
		sb.WriteString(status)
	}
	return sb.String()
}

func (m *Model) renderHeader() string {
	st := m.cfg.Style
	l := m.computeLayout()
	cols := m.tbl.Columns()

	var head, rule strings.Builder
	for j, name := range cols {
		w := l.widths[j]
		head.WriteString(st.Header.Render(grapheme.Fit(name, w)))
		head.WriteString(st.Separator.Render(colSep))
		rule.WriteString(st.Separator.Render(strings.Repeat("─", w) + "─┼─"))
	}
	head.WriteString(st.Header.Render(grapheme.Fit(m.cfg.ActionsColumnName, l.actionsWidth)))
	rule.WriteString(st.Separator.Render(strings.Repeat("─", l.actionsWidth)))
	return head.String() + "\n" + rule.String()
}

func (m *Model) renderBody() string {
	l := m.computeLayout()
	out := make([]string, 0, m.newRowIndex()+1)
	for row := 0; row <= m.newRowIndex(); row++ {
		out = append(out, m.renderLine(row, l))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, l layout) string {
	st := m.cfg.Style
	var sb strings.Builder
	for j, w := range l.widths {
		sb.WriteString(m.renderCell(Cell{Row: row, Col: j}, w))
		sb.WriteString(st.Separator.Render(colSep))
	}

	primary, secondary := m.buttonLabels(row)
	sb.WriteString(m.renderButton(Cell{Row: row, Col: m.actionsCol()}, primary))
	sb.WriteByte(' ')
	sb.WriteString(m.renderButton(Cell{Row: row, Col: m.lastCol()}, secondary))
	if pad := l.actionsWidth - buttonsWidth(primary, secondary); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	return sb.String()
}

func (m *Model) renderCell(c Cell, w int) string {
	st := m.cfg.Style
	v, input := m.cellValue(c)
	focused := m.focused && !m.pending.active && m.cursor == c

	switch {
	case input && focused:
		return m.renderInputCursor(v, w)
	case input:
		return st.Input.Render(grapheme.Fit(v, w))
	case focused:
		return st.CellFocused.Render(grapheme.Fit(v, w))
	default:
		return st.Cell.Render(grapheme.Fit(v, w))
	}
}

// renderInputCursor draws the focused input scrolled so the cursor cell is
// visible. The cursor sits past the last character when it is at the end.
func (m *Model) renderInputCursor(v string, w int) string {
	st := m.cfg.Style
	before, at, after := grapheme.SplitAt(v, m.inputPosition(v))
	if at == "" {
		at = " "
	}
	atWidth := grapheme.Width(at)
	before = grapheme.Tail(before, w-atWidth)
	rest := w - grapheme.Width(before) - atWidth
	after = grapheme.Truncate(after, rest)
	pad := rest - grapheme.Width(after)
	if pad < 0 {
		pad = 0
	}

	var sb strings.Builder
	if before != "" {
		sb.WriteString(st.InputFocused.Render(before))
	}
	sb.WriteString(st.Cursor.Render(at))
	if after != "" {
		sb.WriteString(st.InputFocused.Render(after))
	}
	sb.WriteString(strings.Repeat(" ", pad))
	return sb.String()
}

func (m *Model) renderButton(c Cell, label string) string {
	st := m.cfg.Style
	if m.focused && !m.pending.active && m.cursor == c {
		return st.ButtonFocused.Render(buttonText(label))
	}
	return st.Button.Render(buttonText(label))
}

func (m *Model) statusLine() string {
	if m.pending.active {
		return m.cfg.Style.Prompt.Render(m.pending.prompt + " (y/n)")
	}
	if m.cfg.ShowHelp {
		return m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
	}
	return ""
}

// renderConfirmDialog composites the delete prompt over the centre of body.
// The status line carries the prompt alone when the dialog does not fit.
func (m *Model) renderConfirmDialog(body string) string {
	st := m.cfg.Style
	dialog := st.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.Prompt.Render(m.pending.prompt),
		m.help.ShortHelpView(m.cfg.KeyMap.confirmHelp()),
	))

	dw, dh := lipgloss.Width(dialog), lipgloss.Height(dialog)
	bw, bh := lipgloss.Width(body), lipgloss.Height(body)
	if dw > bw || dh > bh {
		return body
	}
	return overlay.Composite(dialog, body, overlay.Left, overlay.Top, (bw-dw)/2, (bh-dh)/2)
}
