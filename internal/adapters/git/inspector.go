// Package git derives the repository context of a directory by asking the git CLI.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RepoInspector = (*Inspector)(nil)

// Inspector implements ports.RepoInspector using the git executable.
type Inspector struct {
	binary string
}

// NewInspector creates an Inspector that runs the git binary found in PATH.
func NewInspector() *Inspector {
	return &Inspector{binary: "git"}
}

// NewInspectorWithBinary creates an Inspector that runs the given git binary.
func NewInspectorWithBinary(binary string) *Inspector {
	return &Inspector{binary: binary}
}

// Inspect returns the root name and current branch of the repository containing dir.
//
// Outside a repository the error matches both domain.ErrNoRepoContext and
// domain.ErrNotARepository. Inside a repository without a usable branch (detached
// HEAD or no commits yet) it matches domain.ErrNoRepoContext and domain.ErrNoBranch.
func (i *Inspector) Inspect(ctx context.Context, dir string) (domain.RepoContext, error) {
	top, err := i.run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return domain.RepoContext{}, errors.Join(domain.ErrNoRepoContext, domain.ErrNotARepository,
			zerr.With(err, "dir", dir))
	}

	branch, err := i.run(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return domain.RepoContext{}, errors.Join(domain.ErrNoRepoContext, domain.ErrNoBranch,
			zerr.With(zerr.Wrap(err, "HEAD is detached"), "dir", dir))
	}

	if _, err := i.run(ctx, dir, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		return domain.RepoContext{}, errors.Join(domain.ErrNoRepoContext, domain.ErrNoBranch,
			zerr.With(zerr.Wrap(err, "branch has no commits yet"), "branch", branch))
	}

	repo := domain.RepoContext{
		RootName: filepath.Base(filepath.FromSlash(top)),
		Branch:   branch,
	}
	if !repo.Valid() {
		return domain.RepoContext{}, errors.Join(domain.ErrNoRepoContext,
			zerr.With(zerr.New("git reported an unusable repository context"), "toplevel", top))
	}
	return repo, nil
}

// run executes git with args in dir and returns its trimmed standard output.
func (i *Inspector) run(ctx context.Context, dir string, args ...string) (string, error) {
	//nolint:gosec // Arguments are fixed by the callers above
	cmd := exec.CommandContext(ctx, i.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return "", wrapped
	}
	return strings.TrimSpace(stdout.String()), nil
}
