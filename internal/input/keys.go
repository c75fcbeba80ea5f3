// Package input maps keys, clicks and drags to browser actions.
package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the browser view.
type KeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Forward     key.Binding
	Favorite    key.Binding
	AutoAdvance key.Binding
	Mute        key.Binding
	Help        key.Binding
	Theme       key.Binding
	Restricted  key.Binding
	Category    key.Binding
	Favorites   key.Binding
	Faster      key.Binding
	Slower      key.Binding
	Reset       key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/↑", "previous"),
		),
		Forward: key.NewBinding(
			key.WithKeys("shift+right", ">"),
			key.WithHelp(">", "forward in history"),
		),
		Favorite: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "favorite"),
		),
		AutoAdvance: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "auto-advance"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "shortcuts"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Restricted: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "restricted mode"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorites"),
		),
		Faster: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shorter interval"),
		),
		Slower: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "longer interval"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all data"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Favorite, k.AutoAdvance, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Forward, k.Favorite},
		{k.AutoAdvance, k.Faster, k.Slower},
		{k.Mute, k.Theme, k.Restricted},
		{k.Category, k.Favorites, k.Reset},
		{k.Help, k.Quit},
	}
}
