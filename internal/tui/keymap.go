package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the review session's keyboard shortcuts.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding

	Approve key.Binding
	Edit    key.Binding
	Reject  key.Binding
	Confirm key.Binding

	CommitField key.Binding
	CancelEdit  key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous item"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next item"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next category"),
		),
		Approve: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "approve"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Reject: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reject"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "confirm all & save"),
		),
		CommitField: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "next field / save edits"),
		),
		CancelEdit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel edits"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
