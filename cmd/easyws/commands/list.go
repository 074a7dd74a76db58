package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/easyws/internal/app"
	"go.trai.ch/easyws/internal/ui/output"
	"go.trai.ch/easyws/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved workspaces",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			long, _ := cmd.Flags().GetBool("long")
			asJSON, _ := cmd.Flags().GetBool("json")

			summaries, err := c.app.ListWorkspaces(cmd.Context(), long)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			return renderList(cmd.OutOrStdout(), summaries, long)
		},
	}
	cmd.Flags().BoolP("long", "l", false, "Show folder and file counts")
	cmd.Flags().Bool("json", false, "Print the list as JSON")
	return cmd
}

// renderList prints one workspace per line, marking the current one.
func renderList(w io.Writer, summaries []app.Summary, long bool) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	idStyle := r.NewStyle().Foreground(style.Teal)
	mutedStyle := r.NewStyle().Foreground(style.Slate)
	currentStyle := r.NewStyle().Foreground(style.Green)

	width := 0
	for _, s := range summaries {
		width = max(width, lipgloss.Width(s.Identity))
	}

	for _, s := range summaries {
		marker := style.Other
		if s.Current {
			marker = currentStyle.Render(style.Current)
		}

		line := marker + " " + idStyle.Render(s.Identity)
		if long {
			pad := strings.Repeat(" ", width-lipgloss.Width(s.Identity))
			line += pad + "  " + mutedStyle.Render(counts(s))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func counts(s app.Summary) string {
	return plural(s.Folders, "folder") + ", " + plural(s.Files, "file")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
