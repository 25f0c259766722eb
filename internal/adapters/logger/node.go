package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/core/ports"
)

const (
	NodeID     graft.ID = "adapter.logger"
	ConcreteID graft.ID = "adapter.logger.concrete"
)

func init() {
	// Concrete node so the CLI can adjust level and format.
	graft.Register(graft.Node[*Logger]{
		ID:        ConcreteID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConcreteID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
