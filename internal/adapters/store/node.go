package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/easyws/internal/adapters/config"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the workspace store Graft node.
	NodeID graft.ID = "adapter.store"
	// StateNodeID is the unique identifier for the session state Graft node.
	StateNodeID graft.ID = "adapter.session_state"
)

func init() {
	graft.Register(graft.Node[ports.WorkspaceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceStore, error) {
			return newFromConfig(ctx)
		},
	})

	graft.Register(graft.Node[ports.SessionState]{
		ID:        StateNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.SessionState, error) {
			return newFromConfig(ctx)
		},
	})
}

func newFromConfig(ctx context.Context) (*Store, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(cfg.StoreDir, cfg.Extension), nil
}
