package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/adapters/cache"   //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/engine"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/reform/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is everything main needs: the app and the concrete logger the
// CLI configures from flags.
type Components struct {
	App    *App
	Logger *logger.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.SelectorNodeID,
			cache.NodeID,
			engine.NodeID,
			fs.HasherNodeID,
			orchestrator.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.ConcreteID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	selector, err := graft.Dep[ports.FileSelector](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	engines, err := graft.Dep[ports.EngineFactory](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, selector, store, engines, hasher, orch, watchers, log), nil
}
