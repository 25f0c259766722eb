package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/telemetry/progrock"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "src/a.js")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stderr().Write([]byte("engine warning\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelDebug, "transformed")
	vertex.Complete(nil)

	_, cached := recorder.Record(context.Background(), "src/b.js")
	cached.Cached()
	cached.Complete(nil)

	_, failed := recorder.Record(context.Background(), "src/c.js")
	failed.Complete(errors.New("transform failed"))

	require.NoError(t, recorder.Close())
}
