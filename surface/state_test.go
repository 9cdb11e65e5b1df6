package surface

import (
	"testing"

	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTracksNavigator(t *testing.T) {
	s := New(3)
	nav, err := navigator.New(s.Config())
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false, false}, s.Active)
	nav.Advance()
	assert.Equal(t, []bool{false, true, false}, s.Active)
	assert.Equal(t, "2 / 3", s.Counter)
	assert.Equal(t, navigator.Enabled, s.Retreat)
	assert.Equal(t, navigator.Enabled, s.Advance)
}

func TestActiveIndex(t *testing.T) {
	s := New(3)
	assert.Equal(t, -1, s.ActiveIndex())

	s.Active[2] = true
	assert.Equal(t, 2, s.ActiveIndex())

	s.Active[0] = true
	assert.Equal(t, -1, s.ActiveIndex())
}

func TestActiveIndexOnSnapshot(t *testing.T) {
	nav, s, err := Attach(4, nil)
	require.NoError(t, err)
	nav.Advance()

	assert.Equal(t, 1, s.Snapshot().ActiveIndex())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New(2)
	s.Active[0] = true

	snap := s.Snapshot()
	s.Active[0] = false

	assert.True(t, snap.Active[0])
}

func TestResumeCarriesCursor(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		cursor int
		want   int
	}{
		{name: "same length", n: 5, cursor: 3, want: 3},
		{name: "shrunk deck clamps", n: 2, cursor: 4, want: 1},
		{name: "start", n: 3, cursor: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, s, err := Resume(tt.n, tt.cursor, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nav.Cursor())
			assert.Equal(t, tt.want, s.ActiveIndex())
		})
	}
}

func TestAttachEmptyDeck(t *testing.T) {
	_, _, err := Attach(0, nil)
	assert.Equal(t, errors.ErrCodeEmptyDeck, errors.GetCode(err))
}
