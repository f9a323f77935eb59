package cli

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mousam-kumari/gift-flask/internal/logging"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	return run(ctx, argv, os.Stdout, os.Stderr)
}

// run executes the command tree and reports a failure on stderr, since
// urfave/cli only prints errors that carry an exit code.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) *Error {
	if err := newApp(stdout, stderr).Run(ctx, argv); err != nil {
		logging.New("error", stderr).Error("command failed", "error", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "giftgen",
		Usage:     "Gift idea suggestions for Indian recipients",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			serveCommand(),
			suggestCommand(),
		},
	}
}
