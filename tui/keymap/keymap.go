package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/deck/config"
)

// KeyMap holds the presenter's key bindings. Field names map to the
// snake_case action names accepted under "keys:" in deck.yml.
type KeyMap struct {
	// Navigation
	Advance key.Binding
	Retreat key.Binding

	// View
	ToggleNotes key.Binding

	// System
	Help key.Binding
	Quit key.Binding
}

// Default returns the stock bindings. Right arrow, space and enter all
// advance; left arrow retreats. The vim keys are extras.
func Default() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys("right", " ", "enter", "l"),
			key.WithHelp("→/space", "next slide"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous slide"),
		),
		ToggleNotes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "speaker notes"),
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

// New returns the default bindings with the configured overrides applied.
func New(overrides config.KeysConfig) KeyMap {
	km := Default()
	ApplyOverrides(&km, overrides)
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retreat, k.Advance, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	groups := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		groups = append(groups, s.Bindings)
	}
	return groups
}

// Sections implements SectionedKeyMap.
func (k KeyMap) Sections() []Section {
	return []Section{
		NavigationSection(k.Advance, k.Retreat),
		ViewSection(k.ToggleNotes),
		SystemSection(k.Help, k.Quit),
	}
}
