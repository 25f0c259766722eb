package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/reform/internal/core/ports"
)

// NodeID is the graft ID of the cache store.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
