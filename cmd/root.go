// Package cmd holds the deck subcommands.
package cmd

import (
	"github.com/grovetools/deck/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the deck command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"deck",
		"Present slide decks in the terminal or the browser",
	)
	root.Long = `deck presents a fixed sequence of slides, one at a time, with a counter,
a progress bar and previous/next controls that dim at either end.

Slides come from a Markdown file (slides separated by a line holding only ---)
or from a pre-rendered HTML document with .slide sections.

Examples:
# present in the terminal
deck present talk.md
# serve to browsers and reload on save
deck serve talk.md --watch
# show the slide outline
deck list talk.md`
	cli.SetVersionTemplate(root)

	root.AddCommand(NewPresentCmd())
	root.AddCommand(NewServeCmd())
	root.AddCommand(NewListCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewVersionCmd())
	return root
}

// NewVersionCmd creates the `version` command.
func NewVersionCmd() *cobra.Command {
	return cli.NewVersionCommand("deck")
}
