package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// listConcurrency bounds the number of records read at once by a detailed listing.
const listConcurrency = 8

// Summary describes a stored workspace.
type Summary struct {
	Identity string `json:"identity"`
	Current  bool   `json:"current"`
	Folders  int    `json:"folders,omitempty"`
	Files    int    `json:"files,omitempty"`
}

// ListWorkspaces returns all stored workspaces in identity order. With detailed set
// the records are loaded to count their folders and files.
func (a *App) ListWorkspaces(ctx context.Context, detailed bool) ([]Summary, error) {
	identities, err := a.store.List()
	if err != nil {
		return nil, err
	}

	current, err := a.state.Current()
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not read current workspace: %v", err))
	}

	summaries := make([]Summary, len(identities))
	for i, id := range identities {
		summaries[i] = Summary{Identity: id, Current: id == current}
	}
	if !detailed {
		return summaries, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i := range summaries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ws, err := a.store.Load(summaries[i].Identity)
			if err != nil {
				return err
			}
			summaries[i].Folders = len(ws.Folders)
			summaries[i].Files = len(ws.Files)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
