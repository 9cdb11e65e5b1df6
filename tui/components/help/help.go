package help

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/deck/tui/keymap"
	"github.com/grovetools/deck/tui/theme"
)

// Keys is what the help component needs from a keymap.
type Keys interface {
	bhelp.KeyMap
	keymap.SectionedKeyMap
}

// Model is an embeddable help component: a one-line hint bar, and a
// centered overlay listing every section when ShowAll is set.
type Model struct {
	Keys    Keys
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	// Close lists the bindings that dismiss the overlay besides esc.
	Close []key.Binding

	short bhelp.Model
}

// New creates a help model for keys using the default theme.
func New(keys Keys) Model {
	m := Model{Keys: keys}
	m.SetTheme(theme.DefaultTheme)
	return m
}

// SetTheme restyles the component.
func (m *Model) SetTheme(t *theme.Theme) {
	m.Theme = t
	m.short = bhelp.New()
	m.short.ShortSeparator = t.Muted.Render(" • ")
	m.short.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Blue)
	m.short.Styles.ShortDesc = t.Muted
}

// Update closes the overlay on esc or one of the Close bindings.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.Close...) {
			m.Toggle()
		}
	}
	return m, nil
}

// View renders the overlay when ShowAll is set, otherwise the hint bar.
func (m Model) View() string {
	if m.Keys == nil {
		return ""
	}
	if m.ShowAll {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.fullView())
	}
	m.short.Width = m.Width
	return m.short.ShortHelpView(m.Keys.ShortHelp())
}

func (m Model) fullView() string {
	var blocks []string
	for _, section := range m.Keys.Sections() {
		if section.IsEmpty() {
			continue
		}
		blocks = append(blocks, m.renderSectionBox(section))
	}
	if len(blocks) == 0 {
		return ""
	}

	titleText := m.Title
	if titleText == "" {
		titleText = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)

	// Side by side when it fits, stacked otherwise.
	body := lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, "  ")...)
	if m.Width > 0 && lipgloss.Width(body) > m.Width {
		body = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(titleText), body)
}

func (m Model) renderSectionBox(section keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, b := range section.FilterEnabled() {
		table = table.Row(keyStyle.Render(bindingKeys(b)), m.Theme.Muted.Italic(true).Render(b.Help().Desc))
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(section.Name), table.String()))
}

// bindingKeys lists every key of a binding, not just its help label, so
// remapped and alternate keys are visible.
func bindingKeys(b key.Binding) string {
	keys := make([]string, 0, len(b.Keys()))
	for _, k := range b.Keys() {
		if k == " " {
			k = "space"
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, "/")
}

func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}

// Toggle switches between the hint bar and the overlay.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

