// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/reform/internal/core/domain"
)

// TransformEngine is the opaque text transformation applied to every candidate.
// Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type TransformEngine interface {
	// Transform returns the transformed content, or an error when the engine
	// cannot process it. Unrecognized option keys are ignored.
	Transform(ctx context.Context, content string, opts domain.Options) (string, error)
}

// EngineFactory builds a TransformEngine from its configuration.
type EngineFactory interface {
	// New returns the engine selected by cfg.Kind.
	New(cfg domain.EngineConfig) (TransformEngine, error)
}
