package present

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/deck/deck"
)

// DeckReloadedMsg carries the result of re-reading the deck source.
type DeckReloadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// Watch forwards every reload seen by w to p until ctx is done.
func Watch(ctx context.Context, w *deck.Watcher, p *tea.Program) {
	w.Start(ctx, func(d *deck.Deck, err error) {
		p.Send(DeckReloadedMsg{Deck: d, Err: err})
	})
}

// Run presents m on the alternate screen until the user quits or ctx is
// done. When w is non-nil the deck is reloaded as its source changes.
func Run(ctx context.Context, m Model, w *deck.Watcher) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if w != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go Watch(watchCtx, w, p)
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside, e.g. by a signal.
		return nil
	}
	return err
}
