package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the host key bindings
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Select    key.Binding
	Reload    key.Binding
	Direction key.Binding
	Scroll    key.Binding
	Wider     key.Binding
	Narrower  key.Binding
	Log       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Direction: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "direction"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle paging"),
		),
		Wider: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "wider page"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "narrower page"),
		),
		Log: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "event log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Log, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Select},
		{k.Reload, k.Direction, k.Scroll},
		{k.Wider, k.Narrower},
		{k.Log, k.Help, k.Quit},
	}
}
