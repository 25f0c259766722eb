package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/reform/internal/core/ports"
)

// NodeID is the graft ID of the engine factory.
const NodeID graft.ID = "adapter.engine_factory"

func init() {
	graft.Register(graft.Node[ports.EngineFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EngineFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(log), nil
		},
	})
}
