package present

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/deck/navigator"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// border, padding and a little air around the slide box
	slideChrome = 12
)

// View renders the presenter.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	width, height := m.size()

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	helpLine := m.help.View()

	var notes string
	if m.showNotes {
		notes = m.renderNotes(width)
	}

	used := lipgloss.Height(header) + lipgloss.Height(footer) + lipgloss.Height(helpLine)
	if notes != "" {
		used += lipgloss.Height(notes)
	}
	slideHeight := max(height-used-2, 3)

	parts := []string{header, m.renderSlide(width, slideHeight)}
	if notes != "" {
		parts = append(parts, notes)
	}
	parts = append(parts, footer, helpLine)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m Model) renderHeader(width int) string {
	title := m.theme.Bold.Render(m.deck.Title)
	if m.deck.Author != "" {
		title += m.theme.Muted.Render(" · " + m.deck.Author)
	}
	if m.reloadErr != nil {
		return lipgloss.JoinVertical(lipgloss.Left, title,
			m.theme.Error.Width(width).Render("reload failed: "+m.reloadErr.Error()))
	}
	return title
}

func (m Model) renderSlide(width, height int) string {
	idx := m.state.ActiveIndex()
	if idx < 0 {
		return ""
	}
	return m.theme.Slide.
		Width(width - 2).
		Height(height).
		Render(m.slideContent(idx))
}

// slideContent returns the body of slide idx ready for the terminal.
// Markdown slides go through glamour; HTML slides are already plain text.
func (m Model) slideContent(idx int) string {
	if out, ok := m.rendered[idx]; ok {
		return out
	}

	s := m.deck.Slides[idx]
	var out string
	if s.HTML != "" {
		var b strings.Builder
		if s.Title != "" {
			b.WriteString(m.theme.SlideTitle.Render(s.Title))
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Normal.Render(s.Body))
		out = b.String()
	} else {
		out = m.renderMarkdown(s.Body)
	}

	m.rendered[idx] = out
	return out
}

func (m Model) renderMarkdown(body string) string {
	if m.renderer == nil {
		return body
	}
	out, err := m.renderer.Render(body)
	if err != nil {
		m.logger.WithError(err).Debug("markdown render failed, showing source")
		return body
	}
	return strings.Trim(out, "\n")
}

// newRenderer builds the glamour renderer for a window of the given width.
// It returns nil when glamour cannot be set up; slides then show their
// markdown source.
func (m Model) newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.glamourStyle),
		glamour.WithWordWrap(max(width-slideChrome, 20)),
	)
	if err != nil {
		m.logger.WithError(err).Debug("markdown renderer unavailable, showing source")
		return nil
	}
	return r
}

func (m Model) renderNotes(width int) string {
	idx := m.state.ActiveIndex()
	if idx < 0 {
		return ""
	}
	notes := m.deck.Slides[idx].Notes
	if notes == "" {
		notes = "(no notes)"
	}
	return m.theme.Notes.Width(width - 2).Render("Notes: " + notes)
}

// renderFooter draws the two controls around the counter and progress bar.
// A control at a boundary is drawn dimmed.
func (m Model) renderFooter(width int) string {
	prev := m.controlStyle(m.state.Retreat).Render("← prev")
	next := m.controlStyle(m.state.Advance).Render("next →")
	counter := m.theme.Counter.Render(m.state.Counter)
	bar := m.progress.ViewAs(m.state.Percent / 100)

	row := lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", counter, " ", bar, " ", next)
	if lipgloss.Width(row) > width {
		row = lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", counter, " ", next)
	}
	return row + m.theme.Muted.Render(fmt.Sprintf("  %3.0f%%", m.state.Percent))
}

func (m Model) controlStyle(a navigator.Affordance) lipgloss.Style {
	if a.Actionable() {
		return m.theme.Control
	}
	return m.theme.ControlDimmed
}
