package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/easyws/internal/app"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <command> [json-args]",
		Short: "Run save, save_as, open or delete with a JSON argument blob",
		Long: "invoke is the entry point for editor plugins and VCS hooks. The argument blob may carry\n" +
			"\"identity\" or \"filename\" and is read from stdin when omitted. The result is printed as JSON\n" +
			"and the exit status is 1 when the command failed. When the session document is exchanged over\n" +
			"stdin and stdout the blob must be given as an argument and the result is printed to stderr.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result    *app.InvokeResult
				invokeErr error
			)
			switch {
			case len(args) == 2:
				result, invokeErr = c.app.Invoke(cmd.Context(), args[0], []byte(args[1]))
			case c.app.SessionOnStdio():
				// stdin carries the session document.
				command, _ := app.NormalizeCommand(args[0])
				invokeErr = zerr.Wrap(domain.ErrInvalidArguments,
					"argument blob must be given on the command line while the session is read from stdin")
				result = app.NewInvokeFailure(command, "", invokeErr)
			default:
				blob, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return zerr.Wrap(err, "failed to read arguments from stdin")
				}
				result, invokeErr = c.app.Invoke(cmd.Context(), args[0], blob)
			}

			enc := json.NewEncoder(c.resultWriter(cmd))
			if err := enc.Encode(result); err != nil {
				return zerr.Wrap(err, "failed to write result")
			}
			if invokeErr != nil {
				return domain.ErrInvocationFailed
			}
			return nil
		},
	}
}
