package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/grovetools/deck/cli"
	"github.com/grovetools/deck/deck"
	"github.com/grovetools/deck/tui/theme"
	"github.com/spf13/cobra"
)

type slideSummary struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Lines    int    `json:"lines"`
	HasNotes bool   `json:"has_notes"`
}

// NewListCmd creates the `list` command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Show the slides of a deck",
		Args:  cobra.MaximumNArgs(1),
	}

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

		summaries := summarize(d)
		if cli.GetOptions(cmd).JSONOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderSlideTable(theme.DefaultTheme, d.Title, summaries))
		return nil
	}
	return cmd
}

func summarize(d *deck.Deck) []slideSummary {
	out := make([]slideSummary, 0, d.Len())
	for i, s := range d.Slides {
		title := s.Title
		if title == "" {
			title = firstLine(s.Body)
		}
		out = append(out, slideSummary{
			Index:    i + 1,
			Title:    title,
			Lines:    strings.Count(s.Body, "\n") + 1,
			HasNotes: s.Notes != "",
		})
	}
	return out
}

// maxTitleWidth bounds untitled slide previews, in terminal cells.
const maxTitleWidth = 40

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	if ansi.StringWidth(line) > maxTitleWidth {
		line = ansi.Truncate(line, maxTitleWidth, "…")
	}
	return line
}

func renderSlideTable(t *theme.Theme, title string, rows []slideSummary) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.TableBorder).
		Headers("#", "TITLE", "LINES", "NOTES").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.TableHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range rows {
		notes := ""
		if r.HasNotes {
			notes = "✓"
		}
		tbl.Row(fmt.Sprint(r.Index), r.Title, fmt.Sprint(r.Lines), notes)
	}
	return t.Bold.Render(title) + "\n" + tbl.String()
}
