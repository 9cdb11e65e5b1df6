package present

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/tui/keymap"
	"github.com/grovetools/deck/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testDeck(n int) *deck.Deck {
	d := &deck.Deck{Title: "Compiler Talk", Author: "Ana"}
	for i := 0; i < n; i++ {
		d.Slides = append(d.Slides, deck.Slide{
			Title: fmt.Sprintf("Slide %d", i+1),
			Body:  fmt.Sprintf("# Slide %d\n\nbody %d", i+1, i+1),
			Notes: fmt.Sprintf("notes %d", i+1),
		})
	}
	return d
}

func newModel(t *testing.T, d *deck.Deck) Model {
	t.Helper()
	m, err := New(Config{
		Deck:         d,
		Keys:         keymap.Default(),
		Theme:        theme.NewThemeWithName("terminal"),
		GlamourStyle: "notty",
	})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestFiveSlideWalk(t *testing.T) {
	m := newModel(t, testDeck(5))

	st := m.State()
	assert.Equal(t, "1 / 5", st.Counter)
	assert.Equal(t, navigator.Disabled, st.Retreat)
	assert.Equal(t, navigator.Enabled, st.Advance)

	m = send(t, m, keyRight)
	st = m.State()
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, "2 / 5", st.Counter)
	assert.InDelta(t, 40.0, st.Percent, 1e-9)

	m = send(t, m, keySpace, keyEnter, runes("l"))
	st = m.State()
	assert.Equal(t, "5 / 5", st.Counter)
	assert.InDelta(t, 100.0, st.Percent, 1e-9)
	assert.Equal(t, navigator.Disabled, st.Advance)

	m = send(t, m, keyRight)
	assert.Equal(t, 4, m.Cursor(), "advance at the last slide is a no-op")

	m = send(t, m, keyLeft)
	st = m.State()
	assert.Equal(t, "4 / 5", st.Counter)
	assert.InDelta(t, 80.0, st.Percent, 1e-9)
	assert.Equal(t, navigator.Enabled, st.Advance)
}

func TestAdvanceKeysAreEquivalent(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRight, keySpace, keyEnter} {
		t.Run(msg.String(), func(t *testing.T) {
			m := send(t, newModel(t, testDeck(3)), msg)
			assert.Equal(t, 1, m.Cursor())
			assert.Equal(t, "2 / 3", m.State().Counter)
		})
	}
}

func TestUnboundKeysDoNothing(t *testing.T) {
	m := send(t, newModel(t, testDeck(3)), runes("x"), tea.KeyMsg{Type: tea.KeyUp}, keyLeft)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 0, m.State().ActiveIndex())
}

func TestQuit(t *testing.T) {
	m := newModel(t, testDeck(2))
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNotesToggle(t *testing.T) {
	m := send(t, newModel(t, testDeck(2)), tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotContains(t, m.View(), "notes 1")

	m = send(t, m, runes("n"))
	assert.Contains(t, m.View(), "notes 1")

	m = send(t, m, keyRight)
	assert.Contains(t, m.View(), "notes 2")
}

func TestHelpOverlayConsumesKeys(t *testing.T) {
	m := send(t, newModel(t, testDeck(3)), tea.WindowSizeMsg{Width: 100, Height: 30}, runes("?"))
	assert.Contains(t, m.View(), keymap.SectionNavigation)

	m = send(t, m, keyRight)
	assert.Equal(t, 0, m.Cursor())

	m = send(t, m, keyEsc, keyRight)
	assert.Equal(t, 1, m.Cursor())
}

func TestViewShowsSlideAndCounter(t *testing.T) {
	m := send(t, newModel(t, testDeck(3)), tea.WindowSizeMsg{Width: 100, Height: 30}, keyRight)

	view := m.View()
	assert.Contains(t, view, "Compiler Talk")
	assert.Contains(t, view, "body 2")
	assert.NotContains(t, view, "body 1")
	assert.Contains(t, view, "2 / 3")
	assert.Contains(t, view, "next →")
}

func TestViewHTMLSlide(t *testing.T) {
	d := &deck.Deck{Title: "Talk", Slides: []deck.Slide{
		{Title: "Fases", Body: "Análise léxica", HTML: "<h2>Fases</h2><p>Análise léxica</p>"},
	}}
	view := newModel(t, d).View()
	assert.Contains(t, view, "Fases")
	assert.Contains(t, view, "Análise léxica")
	assert.NotContains(t, view, "<h2>")
}

func TestDeckReload(t *testing.T) {
	m := send(t, newModel(t, testDeck(5)), keyRight, keyRight, keyRight, keyRight)
	require.Equal(t, 4, m.Cursor())

	m = send(t, m, DeckReloadedMsg{Deck: testDeck(3)})
	assert.Equal(t, 2, m.Cursor(), "cursor is clamped to the new deck")
	assert.Equal(t, "3 / 3", m.State().Counter)
	assert.Equal(t, navigator.Disabled, m.State().Advance)

	m = send(t, m, DeckReloadedMsg{Err: errors.DeckNotFound("talk.md")})
	assert.Equal(t, 3, m.Deck().Len(), "a failed reload keeps the previous deck")
	assert.Contains(t, m.View(), "reload failed")

	m = send(t, m, DeckReloadedMsg{Deck: &deck.Deck{}})
	assert.Equal(t, 3, m.Deck().Len(), "an empty deck is rejected")

	m = send(t, m, DeckReloadedMsg{Deck: testDeck(6)})
	assert.Equal(t, 2, m.Cursor())
	assert.NotContains(t, m.View(), "reload failed")
}

func TestNewRejectsEmptyDeck(t *testing.T) {
	_, err := New(Config{Deck: &deck.Deck{}, Keys: keymap.Default()})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyDeck, errors.GetCode(err))
}

func TestRendererBuiltOutsideView(t *testing.T) {
	m := newModel(t, testDeck(3))
	require.NotNil(t, m.renderer)
	assert.Equal(t, "notty", m.glamourStyle)

	r := m.renderer
	m = send(t, m, keyRight)
	_ = m.View()
	m = send(t, m, keyRight)
	_ = m.View()
	assert.Same(t, r, m.renderer, "navigation reuses the renderer")
	assert.Contains(t, m.View(), "body 3")

	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	require.NotNil(t, m.renderer)
	assert.NotSame(t, r, m.renderer, "a resize rebuilds it for the new width")
}

func TestEmptyStyleResolvedAtConstruction(t *testing.T) {
	m, err := New(Config{Deck: testDeck(1), Keys: keymap.Default()})
	require.NoError(t, err)
	assert.NotEmpty(t, m.glamourStyle)
	assert.NotEqual(t, "auto", m.glamourStyle)
}
