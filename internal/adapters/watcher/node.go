package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/easyws/internal/adapters/config"
	"go.trai.ch/easyws/internal/adapters/logger"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
)

// NodeID is the unique identifier for the session watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(cfg.AutosaveDebounce, log.Error)
		},
	})
}
