package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// identityCmd builds a command taking an optional identity that prints the identity it acted on.
func (c *CLI) identityCmd(use, short string, op func(ctx context.Context, hint string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [identity]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hint string
			if len(args) == 1 {
				hint = args[0]
			}
			identity, err := op(cmd.Context(), hint)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.resultWriter(cmd), identity)
			return nil
		},
	}
}

func (c *CLI) newSaveCmd() *cobra.Command {
	return c.identityCmd("save", "Save the session under the given identity or the current repository and branch",
		c.app.SaveWorkspace)
}

func (c *CLI) newSaveAsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-as <identity>",
		Short: "Save the session under an explicit identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := c.app.SaveAsWorkspace(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.resultWriter(cmd), identity)
			return nil
		},
	}
}

func (c *CLI) newOpenCmd() *cobra.Command {
	return c.identityCmd("open", "Restore a workspace into the session, starting an empty one if none is saved",
		c.app.OpenWorkspace)
}

func (c *CLI) newDeleteCmd() *cobra.Command {
	return c.identityCmd("delete", "Delete a saved workspace", c.app.DeleteWorkspace)
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := c.identityCmd("watch", "Save the workspace every time the session document changes", c.app.WatchWorkspace)
	cmd.Long = "watch keeps running until interrupted and saves the session after each burst of changes."
	return cmd
}

func (c *CLI) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the workspace last opened or saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := c.app.CurrentWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), identity)
			return nil
		},
	}
}

func (c *CLI) newReopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen",
		Short: "Open the workspace last opened or saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := c.app.ReopenWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.resultWriter(cmd), identity)
			return nil
		},
	}
}
