package engine_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/engine"
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/reform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCommand_Transform_Stdout(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand([]string{"tr", "a-z", "A-Z"}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	got, err := cmd.Transform(context.Background(), "var x;\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "VAR X;\n", got)
}

func TestCommand_Transform_OptionsAsEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand(
		[]string{"sh", "-c", `printf '%s|%s' "$REFORM_OPT_INDENT_SIZE" "$REFORM_OPT_MAX_LINE_LEN"`},
		mocks.NewMockLogger(ctrl),
	)
	require.NoError(t, err)

	got, err := cmd.Transform(context.Background(), "", domain.Options{
		"indent_size":  4,
		"max-line.len": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "4|true", got)
}

func TestCommand_Transform_ResolvesFromPath(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand([]string{"sh", "-c", `printf '%s' "$0"`}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	got, err := cmd.Transform(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "sh", got)
}

func TestCommand_Transform_UnknownExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand([]string{"reform-no-such-formatter"}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	_, err = cmd.Transform(context.Background(), "x", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTransformFailed.Error())
}

func TestCommand_Transform_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand([]string{"sh", "-c", "echo boom >&2; exit 3"}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	_, err = cmd.Transform(context.Background(), "x", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTransformFailed.Error())
}

func TestCommand_Transform_StderrLoggedOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug("engine stderr", "command", "sh", "output", "warning")

	cmd, err := engine.NewCommand([]string{"sh", "-c", "cat; echo warning >&2"}, logger)
	require.NoError(t, err)

	got, err := cmd.Transform(context.Background(), "keep", nil)
	require.NoError(t, err)
	assert.Equal(t, "keep", got)
}

type bufferVertex struct {
	stderr bytes.Buffer
}

func (v *bufferVertex) Stderr() io.Writer { return &v.stderr }
func (v *bufferVertex) Log(domain.LogLevel, string) {}
func (v *bufferVertex) Cached()                     {}
func (v *bufferVertex) Complete(error)              {}

func TestCommand_Transform_StderrToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug("engine stderr", "command", "sh", "output", "note")

	cmd, err := engine.NewCommand([]string{"sh", "-c", "cat >/dev/null; echo note >&2"}, logger)
	require.NoError(t, err)

	v := &bufferVertex{}
	_, err = cmd.Transform(ports.ContextWithVertex(context.Background(), v), "x", nil)
	require.NoError(t, err)
	assert.Equal(t, "note\n", v.stderr.String())
}

func TestCommand_Transform_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	cmd, err := engine.NewCommand([]string{"sleep", "5"}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = cmd.Transform(ctx, "", nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewCommand_Missing(t *testing.T) {
	_, err := engine.NewCommand(nil, nil)
	require.ErrorIs(t, err, domain.ErrMissingCommand)
}
