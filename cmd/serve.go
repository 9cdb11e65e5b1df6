package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grovetools/deck/cli"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/logging"
	"github.com/grovetools/deck/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the `serve` command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve a deck to web browsers",
		Long: `Starts an HTTP server presenting the deck. Every browser tab navigates
independently with the arrow keys, space, enter or the on-screen controls.

Examples:
deck serve talk.md
deck serve talk.html --addr 0.0.0.0:9000 --watch`,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().String("addr", "", "Listen address (host:port)")
	cmd.Flags().Bool("watch", false, "Reload the deck in open browsers when the file changes")

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

		logger := cli.GetLogger(cmd, "serve")
		server, err := web.New(d, logger)
		if err != nil {
			return err
		}

		addr := cfg.Server.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())

		watch := cfg.Watch
		if cmd.Flags().Changed("watch") {
			watch, _ = cmd.Flags().GetBool("watch")
		}
		if watch {
			w, err := deck.NewWatcher(path, deck.DefaultDebounce, logger)
			if err != nil {
				return err
			}
			go w.Start(ctx, func(d *deck.Deck, err error) {
				if err != nil {
					pretty.ErrorPretty("Reload failed, still serving the previous deck", err)
					return
				}
				if err := server.SetDeck(d); err != nil {
					pretty.WarnPretty(fmt.Sprintf("Reloaded deck rejected: %v", err))
					return
				}
				pretty.Success(fmt.Sprintf("Reloaded %q (%d slides)", d.Title, d.Len()))
			})
		}

		errCh := make(chan error, 1)
		go func() { errCh <- server.ListenAndServe(addr) }()

		pretty.Success(fmt.Sprintf("Presenting %q", d.Title))
		pretty.Field("url", "http://"+addr)
		pretty.Field("slides", d.Len())

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
	return cmd
}
