// Package commands implements the CLI commands for easyws.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/easyws/internal/app"
	"go.trai.ch/easyws/internal/build"
)

// CLI represents the command line interface for easyws.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SaveWorkspace(ctx context.Context, hint string) (string, error)
	SaveAsWorkspace(ctx context.Context, identity string) (string, error)
	OpenWorkspace(ctx context.Context, hint string) (string, error)
	DeleteWorkspace(ctx context.Context, hint string) (string, error)
	ListWorkspaces(ctx context.Context, detailed bool) ([]app.Summary, error)
	CurrentWorkspace(ctx context.Context) (string, error)
	ReopenWorkspace(ctx context.Context) (string, error)
	WatchWorkspace(ctx context.Context, hint string) (string, error)
	Invoke(ctx context.Context, name string, blob []byte) (*app.InvokeResult, error)
	SessionOnStdio() bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "easyws",
		Short: "Save and restore editor workspaces per repository and branch",
		Long: "easyws stores the open folders, files and layout of an editing session under an identity.\n" +
			"Without an explicit identity the current git repository and branch name the workspace.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSaveCmd())
	rootCmd.AddCommand(c.newSaveAsCmd())
	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCurrentCmd())
	rootCmd.AddCommand(c.newReopenCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newInvokeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// resultWriter returns where a command prints its result. When the session document
// travels over stdout the result goes to stderr so both stay parseable.
func (c *CLI) resultWriter(cmd *cobra.Command) io.Writer {
	if c.app.SessionOnStdio() {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

// SetInput sets the stream the invoke command reads its argument blob from.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
