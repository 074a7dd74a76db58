package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/easyws/internal/core/ports"
)

// NodeID is the unique identifier for the repository inspector Graft node.
const NodeID graft.ID = "adapter.repo_inspector"

func init() {
	graft.Register(graft.Node[ports.RepoInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.RepoInspector, error) {
			return NewInspector(), nil
		},
	})
}
