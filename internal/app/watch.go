package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchWorkspace saves the session under the identity resolved from hint every time
// the session document changes, until ctx is done. Failed saves are logged and the
// watch continues.
func (a *App) WatchWorkspace(ctx context.Context, hint string) (string, error) {
	if a.sessionPath == "" || a.sessionPath == domain.StdioPath {
		return "", zerr.Wrap(domain.ErrNoActiveSession, "autosave needs a session document file")
	}

	identity, err := a.resolve(ctx, hint)
	if err != nil {
		return "", err
	}

	if err := a.watcher.Watch(ctx, a.sessionPath); err != nil {
		return identity, err
	}
	defer func() {
		if err := a.watcher.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("could not stop watcher: %v", err))
		}
	}()

	a.logger.Info(fmt.Sprintf("autosaving workspace %s on changes to %s", identity, a.sessionPath))

	for range a.watcher.Changes() {
		if ctx.Err() != nil {
			break
		}
		if err := a.save(ctx, identity); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			a.logger.Error(zerr.With(zerr.Wrap(err, "autosave failed"), "identity", identity))
			continue
		}
		a.markCurrent(identity)
		a.logger.Info(fmt.Sprintf("saved workspace %s", identity))
	}

	return identity, nil
}
