// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the overview.
	Back key.Binding

	// Up moves the list cursor up.
	Up key.Binding

	// Down moves the list cursor down.
	Down key.Binding

	// Open opens the highlighted restaurant's details.
	Open key.Binding

	// Cuisine cycles the cuisine filter.
	Cuisine key.Binding

	// Neighbourhood cycles the neighbourhood filter.
	Neighbourhood key.Binding

	// Refresh reloads the catalog.
	Refresh key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cuisine: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cuisine"),
		),
		Neighbourhood: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "neighbourhood"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}
