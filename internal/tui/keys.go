package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	// Navigation
	Dashboard key.Binding
	Monthly   key.Binding
	Entries   key.Binding
	Team      key.Binding

	// Filters
	Period       key.Binding
	ClientFilter key.Binding
	Search       key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:         key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Dashboard:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
	Monthly:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "monthly")),
	Entries:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "entries")),
	Team:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "team")),
	Period:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle period")),
	ClientFilter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle client filter")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
