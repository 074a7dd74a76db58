package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/easyws/internal/adapters/config"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
)

// NodeID is the unique identifier for the session adapter Graft node.
const NodeID graft.ID = "adapter.session"

func init() {
	graft.Register(graft.Node[ports.SessionAdapter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.SessionAdapter, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewAdapter(cfg.SessionFile), nil
		},
	})
}
