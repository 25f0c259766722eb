package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/internal/core/ports"
)

// NodeID is the unique identifier for the default telemetry node.
// Frontends replace it per run with a progrock recorder.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoOp(), nil
		},
	})
}
