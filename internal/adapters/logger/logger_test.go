package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newLogger(t)

	lg.Info("formatted", "count", 3)

	assert.Equal(t, "formatted count=3\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newLogger(t)

	lg.Warn("cache unreadable", "path", "/tmp/x")

	assert.Equal(t, "! cache unreadable path=/tmp/x\n", buf.String())
}

func TestLogger_DebugRequiresLevel(t *testing.T) {
	lg, buf := newLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("shown", "key", "k")
	assert.Equal(t, "● shown key=k\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newLogger(t)
	lg.SetJSON(true)

	lg.Info("summary", "failed", 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "summary", record["msg"])
	assert.InDelta(t, 1, record["failed"], 0)
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newLogger(t)

	err := zerr.Wrap(errors.New("permission denied"), "failed to write file")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to write file")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ permission denied")
}

func TestLogger_ErrorJSON(t *testing.T) {
	lg, buf := newLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_ErrorChainWithMetadata(t *testing.T) {
	lg, buf := newLogger(t)

	err := zerr.Wrap(zerr.With(errors.New("permission denied"), "path", "src/a.js"), "failed to write file")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to write file")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ permission denied")
	assert.Contains(t, out, "path: src/a.js")
	assert.NotContains(t, out, "failed to write file: permission denied")
}
