package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/deck/tui/theme"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal before a program starts. It selects
// the named palette as the default theme and honors CLICOLOR_FORCE and
// COLORTERM=truecolor, which force full color when output is not a TTY.
func InitializeTUI(themeName string) {
	theme.SetDefault(themeName)
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ColorProfile reports the profile lipgloss renders with.
func ColorProfile() termenv.Profile {
	return lipgloss.ColorProfile()
}
