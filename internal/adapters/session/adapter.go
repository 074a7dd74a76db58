// Package session exchanges editing session state with the editor through a session document.
//
// The editor plugin keeps the document up to date with its open folders, files and
// layout, and reloads its window from the document after easyws applies a workspace.
// The path "-" reads the session from standard input and writes it to standard output.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/easyws/internal/adapters/fs"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SessionAdapter = (*Adapter)(nil)

// Adapter implements ports.SessionAdapter on top of a session document.
type Adapter struct {
	path   string
	stdin  io.Reader
	stdout io.Writer
}

// NewAdapter creates an Adapter for the session document at path.
// An empty path means no editing session is reachable.
func NewAdapter(path string) *Adapter {
	return NewAdapterWithStdio(path, os.Stdin, os.Stdout)
}

// NewAdapterWithStdio creates an Adapter that uses the given streams when path is "-".
func NewAdapterWithStdio(path string, stdin io.Reader, stdout io.Writer) *Adapter {
	return &Adapter{
		path:   path,
		stdin:  stdin,
		stdout: stdout,
	}
}

// Path returns the session document path.
func (a *Adapter) Path() string {
	return a.path
}

// Capture reads the current session from the session document.
func (a *Adapter) Capture(ctx context.Context) (*domain.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := a.read()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoActiveSession, "session document is empty"), "path", a.path)
	}

	var ws domain.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, errors.Join(domain.ErrSessionDecodeFailed, zerr.With(err, "path", a.path))
	}
	ws.Identity = ""
	return &ws, nil
}

// Apply replaces the session document with ws. A nil ws presents an empty session.
func (a *Adapter) Apply(ctx context.Context, ws *domain.Workspace) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.path == "" {
		return zerr.Wrap(domain.ErrNoActiveSession, "no session document configured")
	}

	doc := domain.NewEmptyWorkspace("")
	if ws != nil {
		doc = ws.Clone()
		doc.Identity = ""
	}

	data, err := domain.EncodeDocument(doc)
	if err != nil {
		return errors.Join(domain.ErrSessionWriteFailed, err)
	}

	if a.path == domain.StdioPath {
		if _, err := a.stdout.Write(data); err != nil {
			return errors.Join(domain.ErrSessionWriteFailed, zerr.Wrap(err, "failed to write session to stdout"))
		}
		return nil
	}

	if err := fs.WriteFileAtomic(a.path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrSessionWriteFailed, zerr.With(err, "path", a.path))
	}
	return nil
}

func (a *Adapter) read() ([]byte, error) {
	switch a.path {
	case "":
		return nil, zerr.Wrap(domain.ErrNoActiveSession, "no session document configured")
	case domain.StdioPath:
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to read session from stdin")
		}
		return data, nil
	}

	//nolint:gosec // Path comes from the user's configuration
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNoActiveSession, "session document does not exist"), "path", a.path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read session document"), "path", a.path)
	}
	return data, nil
}
