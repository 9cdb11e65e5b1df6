// Package navigator drives a fixed sequence of slides with a single clamped
// cursor and keeps a render surface in sync with it.
package navigator

import (
	"fmt"
	"io"

	"github.com/grovetools/deck/errors"
	"github.com/sirupsen/logrus"
)

// Config carries the render handles a Navigator writes to. All handles are
// required.
type Config struct {
	Slides   []SlideHandle
	Counter  Label
	Progress Indicator
	Retreat  Control
	Advance  Control

	// Logger receives debug output for transitions. Optional.
	Logger *logrus.Entry
}

// Navigator owns the cursor over the slide sequence.
type Navigator struct {
	slides   []SlideHandle
	counter  Label
	progress Indicator
	retreat  Control
	advance  Control
	logger   *logrus.Entry

	cursor int
}

// New validates the handles in cfg, positions the cursor on the first slide
// and renders it. A missing handle or an empty slide sequence is reported
// immediately.
func New(cfg Config) (*Navigator, error) {
	if len(cfg.Slides) == 0 {
		return nil, errors.EmptyDeck("navigator")
	}
	for i, s := range cfg.Slides {
		if isNil(s) {
			return nil, errors.MissingHandle(fmt.Sprintf("slide[%d]", i))
		}
	}
	required := []struct {
		name   string
		handle interface{}
	}{
		{"counter", cfg.Counter},
		{"progress", cfg.Progress},
		{"retreat", cfg.Retreat},
		{"advance", cfg.Advance},
	}
	for _, r := range required {
		if isNil(r.handle) {
			return nil, errors.MissingHandle(r.name)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = logrus.NewEntry(discard)
	}

	n := &Navigator{
		slides:   append([]SlideHandle(nil), cfg.Slides...),
		counter:  cfg.Counter,
		progress: cfg.Progress,
		retreat:  cfg.Retreat,
		advance:  cfg.Advance,
		logger:   logger,
	}
	n.Render()
	return n, nil
}

// Cursor returns the index of the visible slide.
func (n *Navigator) Cursor() int { return n.cursor }

// Total returns the number of slides.
func (n *Navigator) Total() int { return len(n.slides) }

// AtStart reports whether the first slide is visible.
func (n *Navigator) AtStart() bool { return n.cursor == 0 }

// AtEnd reports whether the last slide is visible.
func (n *Navigator) AtEnd() bool { return n.cursor == len(n.slides)-1 }

// Counter returns the counter text for the current cursor.
func (n *Navigator) Counter() string {
	return fmt.Sprintf("%d / %d", n.cursor+1, len(n.slides))
}

// Progress returns (cursor+1)/total expressed as a percentage.
func (n *Navigator) Progress() float64 {
	return float64(100*(n.cursor+1)) / float64(len(n.slides))
}

// Advance moves to the next slide. It is a no-op on the last slide.
func (n *Navigator) Advance() {
	if n.cursor >= len(n.slides)-1 {
		return
	}
	n.cursor++
	n.logger.WithField("cursor", n.cursor).Debug("advanced")
	n.Render()
}

// Retreat moves to the previous slide. It is a no-op on the first slide.
func (n *Navigator) Retreat() {
	if n.cursor <= 0 {
		return
	}
	n.cursor--
	n.logger.WithField("cursor", n.cursor).Debug("retreated")
	n.Render()
}

// Render pushes the cursor state to every handle.
func (n *Navigator) Render() {
	for i, s := range n.slides {
		s.SetActive(i == n.cursor)
	}

	n.counter.SetText(n.Counter())
	n.progress.SetPercent(n.Progress())

	n.retreat.SetAffordance(affordance(!n.AtStart()))
	n.advance.SetAffordance(affordance(!n.AtEnd()))
}

func affordance(actionable bool) Affordance {
	if actionable {
		return Enabled
	}
	return Disabled
}
