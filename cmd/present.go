package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/deck/cli"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/logging"
	"github.com/grovetools/deck/tui"
	"github.com/grovetools/deck/tui/keymap"
	"github.com/grovetools/deck/tui/present"
	"github.com/grovetools/deck/tui/theme"
	"github.com/spf13/cobra"
)

// NewPresentCmd creates the `present` command.
func NewPresentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present [file]",
		Short: "Present a deck in the terminal",
		Long: `Opens the deck full screen. Right arrow, space and enter go forward, left
arrow goes back, n shows speaker notes and ? lists every key. Key bindings can
be changed under "keys:" in deck.yml.

Examples:
deck present talk.md
deck present --watch`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().Bool("watch", false, "Reload the deck when the file changes")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		path, err := cli.ResolveDeck(cfg, args)
		if err != nil {
			return err
		}
		d, err := deck.Load(path)
		if err != nil {
			return err
		}

		// The terminal belongs to the presenter; logs go to the file sink only.
		cfg.Logging.Format.StructuredToStderr = "never"
		logging.Configure(cfg.Logging)
		logger := cli.GetLogger(cmd, "present")

		tui.InitializeTUI(cfg.Theme)
		m, err := present.New(present.Config{
			Deck:   d,
			Keys:   keymap.New(cfg.Keys),
			Theme:  theme.DefaultTheme,
			Logger: logger,
		})
		if err != nil {
			return err
		}

		watch := cfg.Watch
		if cmd.Flags().Changed("watch") {
			watch, _ = cmd.Flags().GetBool("watch")
		}
		var w *deck.Watcher
		if watch {
			w, err = deck.NewWatcher(path, deck.DefaultDebounce, logger)
			if err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return present.Run(ctx, m, w)
	}
	return cmd
}
