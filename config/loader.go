package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched in order in each directory.
var configNames = []string{
	"deck.yml",
	"deck.yaml",
	".deck.yml",
	".deck.yaml",
	"deck.toml",
	".deck.toml",
}

// Load reads and parses a configuration file. The format follows the file
// extension (.toml or YAML otherwise).
func Load(path string) (*Config, error) {
	return LoadWithLogger(path, logrus.NewEntry(logrus.StandardLogger()))
}

// LoadWithLogger is Load with debug output routed to logger.
func LoadWithLogger(path string, logger *logrus.Entry) (*Config, error) {
	raw, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	logger.WithField("path", path).Debug("Loaded configuration document")

	cfg, err := decode(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode config").
			WithDetail("path", path)
	}
	cfg.Path = path
	if cfg.Deck != "" {
		deckPath, err := pathutil.Resolve(cfg.Deck, filepath.Dir(path))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to resolve deck path").
				WithDetail("deck", cfg.Deck)
		}
		cfg.Deck = deckPath
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses YAML configuration from a byte slice. An empty
// slice yields the defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	raw, err := parseDocument([]byte(expandEnvVars(string(data))), ".yml")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config")
	}
	cfg, err := decode(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode config")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDocument reads a config file into a generic document after expanding
// ${VAR} and ${VAR:-default} references.
func LoadDocument(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	raw, err := parseDocument([]byte(expandEnvVars(string(data))), filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
			WithDetail("path", path)
	}
	return raw, nil
}

func parseDocument(data []byte, ext string) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if strings.EqualFold(ext, ".toml") {
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// decode maps a generic document onto Config using the yaml field names, so
// YAML and TOML share one set of tags.
func decode(raw map[string]interface{}) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &cfg,
		TagName: "yaml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile searches startDir and its parents for a config file, then
// the user config directory.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgDir := getXDGConfigDir(); xdgDir != "" {
		for _, name := range configNames {
			path := filepath.Join(xdgDir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", errors.ConfigNotFound(startDir)
}

func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

func getXDGConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "deck")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "deck")
	}
	return ""
}
