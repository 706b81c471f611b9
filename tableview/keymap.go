package tableview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the table key bindings.
//
// Navigation never uses printable keys so input cells can receive any text.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	Next, Prev            key.Binding

	// Activate presses the focused button. On a cell it begins editing the
	// row, commits an editing row or adds the new row.
	Activate key.Binding
	Cancel   key.Binding

	Delete key.Binding
	Add    key.Binding
	Clear  key.Binding

	Copy, Paste key.Binding

	// Bindings active only while the delete prompt is shown.
	ConfirmYes, ConfirmNo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),

		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/update")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),

		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete row")),
		Add:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add row")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear new row")),

		Copy:  key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy cell")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ConfirmYes: key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "delete")),
		ConfirmNo:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Activate.Keys()) == 0 && len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Activate, km.Cancel, km.Delete, km.Add}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.Next, km.Prev},
		{km.Activate, km.Cancel, km.Delete, km.Add, km.Clear},
		{km.Copy, km.Paste},
	}
}

func (km KeyMap) confirmHelp() []key.Binding {
	return []key.Binding{km.ConfirmYes, km.ConfirmNo}
}
