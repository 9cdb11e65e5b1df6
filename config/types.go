package config

import (
	"github.com/grovetools/deck/logging"
)

// Config is the deck.yml / deck.toml configuration.
type Config struct {
	// Deck is the slide source. Relative paths resolve against the config file.
	Deck string `yaml:"deck,omitempty" jsonschema:"description=Path to the slide source (.md or .html)"`

	// Theme selects the terminal palette.
	Theme string `yaml:"theme,omitempty" jsonschema:"description=Terminal color palette name"`

	// Watch reloads the deck when its source file changes.
	Watch bool `yaml:"watch,omitempty" jsonschema:"description=Reload the deck when the source changes"`

	// Keys overrides terminal key bindings, keyed by action name.
	Keys KeysConfig `yaml:"keys,omitempty" jsonschema:"description=Key overrides per action name"`

	Server  ServerConfig   `yaml:"server,omitempty" jsonschema:"description=Browser presenter settings"`
	Logging logging.Config `yaml:"logging,omitempty" jsonschema:"description=Logging settings"`

	// Path is the file the configuration was loaded from, if any.
	Path string `yaml:"-" json:"-"`
}

// KeysConfig maps an action name (snake_case) to the keys that trigger it.
type KeysConfig map[string][]string

// ServerConfig configures the browser presenter.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" jsonschema:"description=Listen address (host:port)"`
}

// KnownActions lists the actions that accept key overrides.
var KnownActions = []string{"advance", "retreat", "toggle_notes", "help", "quit"}

const (
	DefaultTheme = "kanagawa"
	DefaultAddr  = "127.0.0.1:8080"
)

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Logging.Format.StructuredToStderr == "" {
		c.Logging.Format.StructuredToStderr = "auto"
	}
}
