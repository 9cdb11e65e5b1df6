package cli

import (
	"os"

	"github.com/grovetools/deck/config"
	"github.com/grovetools/deck/errors"
	"github.com/grovetools/deck/logging"
	"github.com/grovetools/deck/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the standard flags shared by every command.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command carrying the standard flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to deck.yml or deck.toml")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts the standard options from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// GetLogger returns the component logger, switched to debug level by
// --verbose and to JSON lines by --json.
func GetLogger(cmd *cobra.Command, component string) *logrus.Entry {
	entry := logging.NewLogger(component)
	opts := GetOptions(cmd)
	if opts.Verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	if opts.JSONOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return entry
}

// InitConfig returns the config file to use: the --config flag, else the
// nearest deck.yml or deck.toml. An empty path means none was found.
func InitConfig(configFile string) (string, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return "", errors.ConfigNotFound(configFile)
		}
		return configFile, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	found, err := config.FindConfigFile(cwd)
	if err != nil {
		// Running without a config file is fine.
		return "", nil
	}
	return found, nil
}

// LoadConfig loads the configuration selected by the command's flags and
// applies its logging and theme settings.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)
	path, err := InitConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path == "" {
		cfg, err = config.LoadFromBytes(nil)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if opts.Verbose {
		cfg.Logging.Level = "debug"
	}
	logging.Configure(cfg.Logging)
	theme.SetDefault(cfg.Theme)
	return cfg, nil
}

// ResolveDeck picks the deck path from the first argument or, failing
// that, from the configuration.
func ResolveDeck(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg != nil && cfg.Deck != "" {
		return cfg.Deck, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no deck given").
		WithDetail("hint", "pass a file or set 'deck' in deck.yml")
}
