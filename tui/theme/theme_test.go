package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gruvbox", "gruvbox"},
		{"Gruvbox Dark", "gruvbox"},
		{"kanagawa_wave", "kanagawa"},
		{"terminal", "terminal"},
		{"", defaultThemeName},
		{"solarized", defaultThemeName},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			th := NewThemeWithName(tt.input)
			assert.Equal(t, tt.want, th.Name)
			assert.NotEmpty(t, th.ProgressStart)
			assert.NotEmpty(t, th.ProgressEnd)
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("gruvbox-light"))
	assert.True(t, Known(""))
	assert.False(t, Known("solarized"))
}

func TestSetDefaultPrefersEnvironment(t *testing.T) {
	prev := DefaultTheme
	t.Cleanup(func() { DefaultTheme = prev })

	t.Setenv("DECK_THEME", "terminal")
	SetDefault("gruvbox")
	assert.Equal(t, "terminal", DefaultTheme.Name)

	t.Setenv("DECK_THEME", "")
	SetDefault("gruvbox")
	assert.Equal(t, "gruvbox", DefaultTheme.Name)
}
