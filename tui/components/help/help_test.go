package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/deck/tui/keymap"
	"github.com/stretchr/testify/assert"
)

func TestShortViewListsShortHelp(t *testing.T) {
	m := New(keymap.Default())
	m.SetSize(120, 40)

	view := m.View()
	assert.Contains(t, view, "next slide")
	assert.Contains(t, view, "previous slide")
	assert.NotContains(t, view, "speaker notes")
}

func TestFullViewListsEverySection(t *testing.T) {
	m := New(keymap.Default())
	m.SetSize(120, 40)
	m.Toggle()

	view := m.View()
	for _, s := range keymap.Default().Sections() {
		assert.Contains(t, view, s.Name)
	}
	assert.Contains(t, view, "speaker notes")
	assert.Contains(t, view, "right/space/enter/l")
}

func TestEscClosesOverlay(t *testing.T) {
	km := keymap.Default()
	m := New(km)
	m.Close = []key.Binding{km.Help}
	m.Toggle()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowAll)

	m.Toggle()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.ShowAll)

	// Keys do nothing while the overlay is closed.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowAll)
}

func TestWindowSize(t *testing.T) {
	m := New(keymap.Default())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)
}
