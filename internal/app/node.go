package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/easyws/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/adapters/git"     //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/adapters/session" //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/adapters/store"   //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the CLI needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			store.StateNodeID,
			session.NodeID,
			git.NodeID,
			watcher.NodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	st, err := graft.Dep[ports.WorkspaceStore](ctx)
	if err != nil {
		return nil, err
	}
	state, err := graft.Dep[ports.SessionState](ctx)
	if err != nil {
		return nil, err
	}
	sess, err := graft.Dep[ports.SessionAdapter](ctx)
	if err != nil {
		return nil, err
	}
	repo, err := graft.Dep[ports.RepoInspector](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(st, state, sess, repo, w, log).WithSessionPath(cfg.SessionFile), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log, Config: cfg}, nil
}
