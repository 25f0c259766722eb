package telemetry_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/telemetry"
	"go.trai.ch/reform/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "a.js")
	_, ok := ports.VertexFromContext(ctx)
	assert.True(t, ok)

	assert.Equal(t, io.Discard, v.Stderr())
	v.Cached()
	v.Complete(nil)

	require.NoError(t, tel.Close())
}
