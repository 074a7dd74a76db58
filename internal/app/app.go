// Package app implements the workspace commands of easyws.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
)

// App composes the identity resolver, the workspace store and the session adapter
// into the workspace commands.
type App struct {
	store   ports.WorkspaceStore
	state   ports.SessionState
	session ports.SessionAdapter
	repo    ports.RepoInspector
	watcher ports.Watcher
	logger  ports.Logger

	workDir     string
	sessionPath string
}

// New creates a new App instance.
func New(
	store ports.WorkspaceStore,
	state ports.SessionState,
	session ports.SessionAdapter,
	repo ports.RepoInspector,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		store:   store,
		state:   state,
		session: session,
		repo:    repo,
		watcher: watcher,
		logger:  log,
		workDir: ".",
	}
}

// WithWorkDir sets the directory whose repository context derives identities.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithSessionPath sets the session document watched by WatchWorkspace.
func (a *App) WithSessionPath(path string) *App {
	a.sessionPath = path
	return a
}

// SessionOnStdio reports whether the session document is exchanged over stdin and stdout.
// Callers must then keep their own output off stdout.
func (a *App) SessionOnStdio() bool {
	return a.sessionPath == domain.StdioPath
}

// SaveWorkspace captures the session and stores it under the identity resolved from hint.
func (a *App) SaveWorkspace(ctx context.Context, hint string) (string, error) {
	identity, err := a.resolve(ctx, hint)
	if err != nil {
		return "", err
	}
	if err := a.save(ctx, identity); err != nil {
		return identity, err
	}

	a.markCurrent(identity)
	a.logger.Info(fmt.Sprintf("saved workspace %s", identity))
	return identity, nil
}

// SaveAsWorkspace captures the session and stores it under the explicit identity.
func (a *App) SaveAsWorkspace(ctx context.Context, identity string) (string, error) {
	if err := domain.ValidateIdentity(identity); err != nil {
		return "", err
	}
	if err := a.save(ctx, identity); err != nil {
		return identity, err
	}

	a.markCurrent(identity)
	a.logger.Info(fmt.Sprintf("saved workspace %s", identity))
	return identity, nil
}

// OpenWorkspace applies the workspace stored under the identity resolved from hint.
// An identity without a record is opened as an empty workspace, and the empty record
// is stored so that later opens find it.
func (a *App) OpenWorkspace(ctx context.Context, hint string) (string, error) {
	identity, err := a.resolve(ctx, hint)
	if err != nil {
		return "", err
	}
	if err := a.open(ctx, identity); err != nil {
		return identity, err
	}
	return identity, nil
}

// DeleteWorkspace removes the workspace stored under the identity resolved from hint.
func (a *App) DeleteWorkspace(ctx context.Context, hint string) (string, error) {
	identity, err := a.resolve(ctx, hint)
	if err != nil {
		return "", err
	}
	if err := a.store.Delete(identity); err != nil {
		return identity, err
	}

	if current, err := a.state.Current(); err != nil {
		a.logger.Warn(fmt.Sprintf("could not read current workspace: %v", err))
	} else if current == identity {
		if err := a.state.ClearCurrent(); err != nil {
			a.logger.Warn(fmt.Sprintf("could not clear current workspace: %v", err))
		}
	}

	a.logger.Info(fmt.Sprintf("deleted workspace %s", identity))
	return identity, nil
}

// CurrentWorkspace returns the identity last opened or saved.
func (a *App) CurrentWorkspace(_ context.Context) (string, error) {
	current, err := a.state.Current()
	if err != nil {
		return "", err
	}
	if current == "" {
		return "", domain.ErrNoCurrentWorkspace
	}
	return current, nil
}

// ReopenWorkspace opens the workspace last opened or saved. Unlike OpenWorkspace it
// fails when the record has been deleted since.
func (a *App) ReopenWorkspace(ctx context.Context) (string, error) {
	identity, err := a.CurrentWorkspace(ctx)
	if err != nil {
		return "", err
	}

	exists, err := a.store.Exists(identity)
	if err != nil {
		return identity, err
	}
	if !exists {
		return identity, zerr.With(zerr.Wrap(domain.ErrWorkspaceNotFound, "last workspace no longer exists"),
			"identity", identity)
	}

	if err := a.open(ctx, identity); err != nil {
		return identity, err
	}
	return identity, nil
}

func (a *App) resolve(ctx context.Context, hint string) (string, error) {
	if hint != "" {
		return domain.ResolveIdentity(hint, nil)
	}

	repo, err := a.repo.Inspect(ctx, a.workDir)
	if err != nil {
		if !errors.Is(err, domain.ErrNoRepoContext) {
			err = errors.Join(domain.ErrNoRepoContext, err)
		}
		return "", err
	}
	return domain.ResolveIdentity("", &repo)
}

func (a *App) save(ctx context.Context, identity string) error {
	ws, err := a.session.Capture(ctx)
	if err != nil {
		return err
	}
	return a.store.Save(identity, ws)
}

func (a *App) open(ctx context.Context, identity string) error {
	exists, err := a.store.Exists(identity)
	if err != nil {
		return err
	}

	var ws *domain.Workspace
	if exists {
		if ws, err = a.store.Load(identity); err != nil {
			return err
		}
	} else {
		ws = domain.NewEmptyWorkspace(identity)
		if err := a.store.Save(identity, ws); err != nil {
			return err
		}
	}

	if err := a.session.Apply(ctx, ws); err != nil {
		if !exists {
			a.forget(identity)
		}
		return err
	}

	a.markCurrent(identity)
	switch {
	case !exists:
		a.logger.Info(fmt.Sprintf("opened new workspace %s", identity))
	case ws.IsEmpty():
		a.logger.Info(fmt.Sprintf("opened empty workspace %s", identity))
	default:
		a.logger.Info(fmt.Sprintf("opened workspace %s", identity))
	}
	return nil
}

// forget removes a record created for an open that did not complete.
func (a *App) forget(identity string) {
	if err := a.store.Delete(identity); err != nil {
		a.logger.Warn(fmt.Sprintf("could not remove workspace %s after failed open: %v", identity, err))
	}
}

func (a *App) markCurrent(identity string) {
	if err := a.state.SetCurrent(identity); err != nil {
		a.logger.Warn(fmt.Sprintf("could not record current workspace %s: %v", identity, err))
	}
}
