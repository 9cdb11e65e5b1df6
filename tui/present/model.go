// Package present is the terminal presenter: a bubbletea program that
// draws a deck one slide at a time and forwards keys to a navigator.
package present

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/surface"
	"github.com/grovetools/deck/tui/components/help"
	"github.com/grovetools/deck/tui/keymap"
	"github.com/grovetools/deck/tui/theme"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// Config defines the configuration for the presenter.
type Config struct {
	Deck  *deck.Deck
	Keys  keymap.KeyMap
	Theme *theme.Theme

	// GlamourStyle names a glamour standard style ("dark", "light",
	// "notty"). Empty picks one from the terminal background.
	GlamourStyle string

	Logger *logrus.Entry
}

// Model is the presenter's bubbletea model.
type Model struct {
	deck  *deck.Deck
	nav   *navigator.Navigator
	state *surface.State

	keys     keymap.KeyMap
	theme    *theme.Theme
	help     help.Model
	progress progress.Model
	logger   *logrus.Entry

	glamourStyle string
	renderer     *glamour.TermRenderer
	rendered     map[int]string

	width     int
	height    int
	showNotes bool
	reloadErr error
}

// New creates the presenter model. It fails when the deck has no slides.
func New(cfg Config) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = logrus.NewEntry(discard)
	}
	t := cfg.Theme
	if t == nil {
		t = theme.DefaultTheme
	}
	if cfg.Deck == nil {
		cfg.Deck = &deck.Deck{}
	}

	nav, state, err := surface.Attach(cfg.Deck.Len(), logger)
	if err != nil {
		return Model{}, err
	}

	h := help.New(cfg.Keys)
	h.SetTheme(t)
	h.Title = cfg.Deck.Title
	h.Close = []key.Binding{cfg.Keys.Help, cfg.Keys.Quit}

	style := cfg.GlamourStyle
	if style == "" {
		style = detectGlamourStyle()
	}

	m := Model{
		deck:         cfg.Deck,
		nav:          nav,
		state:        state,
		keys:         cfg.Keys,
		theme:        t,
		help:         h,
		progress:     progress.New(progress.WithGradient(t.ProgressStart, t.ProgressEnd), progress.WithoutPercentage()),
		logger:       logger,
		glamourStyle: style,
		rendered:     make(map[int]string),
	}
	m.renderer = m.newRenderer(defaultWidth)
	return m, nil
}

// detectGlamourStyle picks a markdown style from the terminal. It runs once
// before the program starts; lipgloss caches the background query.
func detectGlamourStyle() string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return styles.NoTTYStyle
	}
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.progress.Width = max(msg.Width-24, 10)
		m.renderer = m.newRenderer(msg.Width)
		m.rendered = make(map[int]string)
		return m, nil

	case DeckReloadedMsg:
		return m.reload(msg), nil

	case tea.KeyMsg:
		// The help overlay consumes keys while open.
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil
		case key.Matches(msg, m.keys.ToggleNotes):
			m.showNotes = !m.showNotes
			return m, nil
		}

		navigator.Dispatch(m.nav, m.actionFor(msg))
	}
	return m, nil
}

// actionFor translates a key press into a navigation action.
func (m Model) actionFor(msg tea.KeyMsg) navigator.Action {
	switch {
	case key.Matches(msg, m.keys.Advance):
		return navigator.ActionAdvance
	case key.Matches(msg, m.keys.Retreat):
		return navigator.ActionRetreat
	}
	return navigator.ActionNone
}

func (m Model) reload(msg DeckReloadedMsg) Model {
	if msg.Err != nil {
		m.logger.WithError(msg.Err).Warn("deck reload failed, keeping previous version")
		m.reloadErr = msg.Err
		return m
	}

	nav, state, err := surface.Resume(msg.Deck.Len(), m.nav.Cursor(), m.logger)
	if err != nil {
		m.logger.WithError(err).Warn("reloaded deck rejected")
		m.reloadErr = err
		return m
	}

	m.logger.WithFields(logrus.Fields{
		"slides": msg.Deck.Len(),
		"cursor": nav.Cursor(),
	}).Info("deck reloaded")

	m.deck = msg.Deck
	m.nav = nav
	m.state = state
	m.reloadErr = nil
	m.help.Title = msg.Deck.Title
	m.rendered = make(map[int]string)
	return m
}

// Cursor returns the index of the visible slide.
func (m Model) Cursor() int { return m.nav.Cursor() }

// State returns a copy of the render surface.
func (m Model) State() surface.State { return m.state.Snapshot() }

// Deck returns the deck being presented.
func (m Model) Deck() *deck.Deck { return m.deck }
