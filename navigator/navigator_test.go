package navigator_test

import (
	"fmt"
	"testing"

	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/navigator"
	"github.com/grovetools/deck/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeck(t *testing.T, total int) (*navigator.Navigator, *surface.State) {
	t.Helper()
	state := surface.New(total)
	nav, err := navigator.New(state.Config())
	require.NoError(t, err)
	return nav, state
}

func assertRendered(t *testing.T, nav *navigator.Navigator, state *surface.State) {
	t.Helper()
	c, total := nav.Cursor(), nav.Total()
	assert.Equal(t, c, state.ActiveIndex(), "exactly the slide at the cursor is active")
	assert.Equal(t, fmt.Sprintf("%d / %d", c+1, total), state.Counter)
	assert.InDelta(t, float64(c+1)/float64(total)*100, state.Percent, 1e-9)
	assert.Equal(t, c > 0, state.Retreat.Actionable())
	assert.Equal(t, c < total-1, state.Advance.Actionable())
}

func TestNewRendersFirstSlide(t *testing.T) {
	nav, state := newDeck(t, 3)

	assert.Equal(t, 0, nav.Cursor())
	assert.Equal(t, 3, nav.Total())
	assert.Equal(t, 1, state.Renders)
	assert.Equal(t, "1 / 3", state.Counter)
	assert.Equal(t, navigator.Disabled, state.Retreat)
	assert.Equal(t, navigator.Enabled, state.Advance)
	assertRendered(t, nav, state)
}

func TestFiveSlideScenario(t *testing.T) {
	nav, state := newDeck(t, 5)

	nav.Advance()
	assert.Equal(t, 1, nav.Cursor())
	assert.Equal(t, "2 / 5", state.Counter)
	assert.Equal(t, 40.0, state.Percent)

	for i := 0; i < 3; i++ {
		nav.Advance()
	}
	assert.Equal(t, 4, nav.Cursor())
	assert.Equal(t, "5 / 5", state.Counter)
	assert.Equal(t, 100.0, state.Percent)
	assert.Equal(t, navigator.Disabled, state.Advance)
	assert.Equal(t, 0.5, state.Advance.Opacity)
	assert.Equal(t, "default", state.Advance.Cursor)

	nav.Retreat()
	assert.Equal(t, 3, nav.Cursor())
	assert.Equal(t, 80.0, state.Percent)
	assert.Equal(t, navigator.Enabled, state.Advance)
	assertRendered(t, nav, state)
}

func TestBoundaryIdempotence(t *testing.T) {
	nav, state := newDeck(t, 4)

	renders := state.Renders
	nav.Retreat()
	nav.Retreat()
	assert.Equal(t, 0, nav.Cursor())
	assert.Equal(t, renders, state.Renders, "no render at the lower boundary")

	for i := 0; i < 10; i++ {
		nav.Advance()
	}
	assert.Equal(t, 3, nav.Cursor())
	renders = state.Renders
	nav.Advance()
	assert.Equal(t, 3, nav.Cursor())
	assert.Equal(t, renders, state.Renders, "no render at the upper boundary")
	assertRendered(t, nav, state)
}

func TestBoundedWalk(t *testing.T) {
	tests := []struct {
		total int
		steps int
	}{
		{total: 1, steps: 0},
		{total: 1, steps: 3},
		{total: 5, steps: 2},
		{total: 5, steps: 4},
		{total: 5, steps: 9},
		{total: 12, steps: 7},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_slides_%d_steps", tt.total, tt.steps), func(t *testing.T) {
			nav, state := newDeck(t, tt.total)
			for i := 0; i < tt.steps; i++ {
				nav.Advance()
				assertRendered(t, nav, state)
			}
			assert.Equal(t, min(tt.steps, tt.total-1), nav.Cursor())

			top := nav.Cursor()
			for i := 0; i < tt.steps; i++ {
				nav.Retreat()
				assertRendered(t, nav, state)
			}
			assert.Equal(t, max(top-tt.steps, 0), nav.Cursor())
		})
	}
}

func TestSingleSlideDisablesBothControls(t *testing.T) {
	nav, state := newDeck(t, 1)

	assert.True(t, nav.AtStart())
	assert.True(t, nav.AtEnd())
	assert.Equal(t, "1 / 1", state.Counter)
	assert.Equal(t, 100.0, state.Percent)
	assert.False(t, state.Retreat.Actionable())
	assert.False(t, state.Advance.Actionable())
}

type nopSlide struct{}

func (*nopSlide) SetActive(bool) {}

func TestNewFailsFast(t *testing.T) {
	valid := func() navigator.Config { return surface.New(3).Config() }

	tests := []struct {
		name   string
		mutate func(*navigator.Config)
		code   errors.ErrorCode
		handle string
	}{
		{
			name:   "no slides",
			mutate: func(c *navigator.Config) { c.Slides = nil },
			code:   errors.ErrCodeEmptyDeck,
		},
		{
			name:   "nil slide",
			mutate: func(c *navigator.Config) { c.Slides[1] = nil },
			code:   errors.ErrCodeMissingHandle,
			handle: "slide[1]",
		},
		{
			name: "typed nil slide",
			mutate: func(c *navigator.Config) {
				var s *nopSlide
				c.Slides[2] = s
			},
			code:   errors.ErrCodeMissingHandle,
			handle: "slide[2]",
		},
		{
			name:   "missing counter",
			mutate: func(c *navigator.Config) { c.Counter = nil },
			code:   errors.ErrCodeMissingHandle,
			handle: "counter",
		},
		{
			name:   "missing progress",
			mutate: func(c *navigator.Config) { c.Progress = nil },
			code:   errors.ErrCodeMissingHandle,
			handle: "progress",
		},
		{
			name:   "missing retreat",
			mutate: func(c *navigator.Config) { c.Retreat = nil },
			code:   errors.ErrCodeMissingHandle,
			handle: "retreat",
		},
		{
			name:   "missing advance",
			mutate: func(c *navigator.Config) { c.Advance = nil },
			code:   errors.ErrCodeMissingHandle,
			handle: "advance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			nav, err := navigator.New(cfg)
			require.Error(t, err)
			assert.Nil(t, nav)
			assert.Equal(t, tt.code, errors.GetCode(err))
			if tt.handle != "" {
				assert.Equal(t, tt.handle, errors.Details(err)["handle"])
			}
		})
	}
}
