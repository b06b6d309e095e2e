package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Daily    key.Binding
	Recs     key.Binding
	Favs     key.Binding
	Prefs    key.Binding
	Enter    key.Binding

	// Actions
	Refresh   key.Binding
	Favorite  key.Binding
	OpenPage  key.Binding
	OpenImage key.Binding
	Filter    key.Binding
	Edit      key.Binding
	Reset     key.Binding
	Help      key.Binding
	Escape    key.Binding
	Quit      key.Binding

	// Confirmations
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab", "previous view"),
		),
		Daily: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "today"),
		),
		Recs: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "recommended"),
		),
		Favs: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "favorites"),
		),
		Prefs: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "preferences"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view/edit"),
		),

		// Actions
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new artwork"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f", "s"),
			key.WithHelp("f", "toggle favorite"),
		),
		OpenPage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open page"),
		),
		OpenImage: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "open image"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit axis"),
		),
		Reset: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "start over"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		// Confirmations
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// HelpSections groups bindings for the help screen
func (k KeyMap) HelpSections() []struct {
	Title    string
	Bindings []key.Binding
} {
	return []struct {
		Title    string
		Bindings []key.Binding
	}{
		{"Navigation", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.NextTab, k.PrevTab, k.Daily, k.Recs, k.Favs, k.Prefs, k.Enter}},
		{"Artwork", []key.Binding{k.Refresh, k.Favorite, k.OpenPage, k.OpenImage, k.Filter, k.Edit}},
		{"General", []key.Binding{k.Reset, k.Help, k.Escape, k.Quit}},
	}
}
