package ports

import (
	"context"
	"io"

	"go.trai.ch/reform/internal/core/domain"
)

// Telemetry records units of work (one per candidate file) for progress reporting.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single unit of recorded work.
type Vertex interface {
	// Stderr returns a writer attached to the vertex's error stream.
	Stderr() io.Writer
	// Log records a message at level.
	Log(level domain.LogLevel, msg string)
	// Cached marks the vertex as satisfied without work.
	Cached()
	// Complete marks the vertex finished; a nil err means success.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
