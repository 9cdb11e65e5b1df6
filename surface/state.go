// Package surface provides an in-memory render target for the navigator.
// Hosts draw their view from a State after every navigation.
package surface

import (
	"github.com/grovetools/deck/navigator"
	"github.com/sirupsen/logrus"
)

// State records everything the navigator renders.
type State struct {
	Active  []bool               `json:"active"`
	Counter string               `json:"counter"`
	Percent float64              `json:"percent"`
	Retreat navigator.Affordance `json:"retreat"`
	Advance navigator.Affordance `json:"advance"`
	Renders int                  `json:"-"`
}

// New creates a State for a deck of n slides.
func New(n int) *State {
	return &State{Active: make([]bool, n)}
}

// Config returns a navigator configuration bound to the handles of s.
func (s *State) Config() navigator.Config {
	slides := make([]navigator.SlideHandle, len(s.Active))
	for i := range s.Active {
		slides[i] = slideHandle{state: s, index: i}
	}
	return navigator.Config{
		Slides:   slides,
		Counter:  counterHandle{s},
		Progress: progressHandle{s},
		Retreat:  controlHandle{state: s, advance: false},
		Advance:  controlHandle{state: s, advance: true},
	}
}

// ActiveIndex returns the index of the active slide, or -1 unless exactly
// one slide is active.
func (s State) ActiveIndex() int {
	idx := -1
	for i, a := range s.Active {
		if !a {
			continue
		}
		if idx != -1 {
			return -1
		}
		idx = i
	}
	return idx
}

// Snapshot returns a copy of s that is safe to hand to another goroutine.
func (s *State) Snapshot() State {
	c := *s
	c.Active = append([]bool(nil), s.Active...)
	return c
}

type slideHandle struct {
	state *State
	index int
}

func (h slideHandle) SetActive(active bool) {
	h.state.Active[h.index] = active
}

type counterHandle struct{ state *State }

func (h counterHandle) SetText(text string) {
	h.state.Counter = text
	h.state.Renders++
}

type progressHandle struct{ state *State }

func (h progressHandle) SetPercent(percent float64) {
	h.state.Percent = percent
}

type controlHandle struct {
	state   *State
	advance bool
}

func (h controlHandle) SetAffordance(a navigator.Affordance) {
	if h.advance {
		h.state.Advance = a
		return
	}
	h.state.Retreat = a
}

// Attach creates a State for n slides and a Navigator drawing into it.
func Attach(n int, logger *logrus.Entry) (*navigator.Navigator, *State, error) {
	s := New(n)
	cfg := s.Config()
	cfg.Logger = logger
	nav, err := navigator.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return nav, s, nil
}

// Resume is Attach followed by advancing towards cursor. A reloaded deck
// gets a fresh navigator; the previous position carries over, clamped to
// the new length.
func Resume(n, cursor int, logger *logrus.Entry) (*navigator.Navigator, *State, error) {
	nav, s, err := Attach(n, logger)
	if err != nil {
		return nil, nil, err
	}
	for nav.Cursor() < cursor && !nav.AtEnd() {
		nav.Advance()
	}
	return nav, s, nil
}
