package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/tui/theme"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Theme != "" && !theme.Known(c.Theme) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown theme %q (available: %s)", c.Theme, strings.Join(theme.Names(), ", "))).
			WithDetail("theme", c.Theme)
	}

	for action, keys := range c.Keys {
		if !isKnownAction(action) {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("unknown action %q in keys", action)).
				WithDetail("action", action)
		}
		if len(keys) == 0 {
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("keys.%s must list at least one key", action)).
				WithDetail("action", action)
		}
	}

	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid server.addr").
				WithDetail("addr", c.Server.Addr)
		}
	}

	if c.Deck != "" {
		switch strings.ToLower(filepath.Ext(c.Deck)) {
		case ".md", ".markdown", ".html", ".htm":
		default:
			return errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("deck %q must be a .md or .html file", c.Deck)).
				WithDetail("deck", c.Deck)
		}
	}

	return nil
}

func isKnownAction(action string) bool {
	for _, known := range KnownActions {
		if action == known {
			return true
		}
	}
	return false
}
