package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the overlay keyboard shortcuts.
type KeyMap struct {
	Toggle   key.Binding
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Decrease key.Binding
	Increase key.Binding
	Escape   key.Binding
	Back     key.Binding
	Home     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("f1", "`"),
			key.WithHelp("F1", "toggle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increase"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "up"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "root"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy path"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Escape, k.Toggle, k.Quit}
}

// FullHelp lists every binding grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Activate, k.Decrease, k.Increase},
		{k.Escape, k.Back, k.Home, k.PageUp, k.PageDown},
		{k.Copy, k.Toggle, k.Quit},
	}
}
