package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reform/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reform/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/reform/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			fs.FilesNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			files, err := graft.Dep[ports.SourceFiles](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(hasher, files, log, tel), nil
		},
	})
}
