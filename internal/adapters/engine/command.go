package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// OptionEnvPrefix prefixes every option exported to a command engine.
	OptionEnvPrefix = "REFORM_OPT_"

	stderrTailSize = 4096
)

var _ ports.TransformEngine = (*Command)(nil)

// Command pipes content through an external program: content on stdin,
// result on stdout, options as REFORM_OPT_* environment variables.
type Command struct {
	argv   []string
	logger ports.Logger
}

// NewCommand creates a Command engine running argv.
func NewCommand(argv []string, logger ports.Logger) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, domain.ErrMissingCommand
	}
	return &Command{argv: slices.Clone(argv), logger: logger}, nil
}

// Transform runs the command once with content on stdin.
// A non-zero exit is reported with its exit code and the tail of stderr.
func (c *Command) Transform(ctx context.Context, content string, opts domain.Options) (string, error) {
	name := c.argv[0]
	args := c.argv[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user configured command
	cmd.Env = resolveEnvironment(os.Environ(), optionEnvironment(opts))
	cmd.Stdin = strings.NewReader(content)

	var stdout bytes.Buffer
	stderr := &tailBuffer{limit: stderrTailSize}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stderr = io.MultiWriter(stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "exit_code", exitCode)
		if tail := strings.TrimSpace(stderr.String()); tail != "" {
			wrapped = zerr.With(wrapped, "stderr", tail)
		}
		return "", wrapped
	}

	if tail := strings.TrimSpace(stderr.String()); tail != "" {
		c.logger.Debug("engine stderr", "command", name, "output", tail)
	}

	return stdout.String(), nil
}

// optionEnvironment renders opts as REFORM_OPT_<KEY> variables.
// Keys are upper-cased and every character outside [A-Z0-9_] becomes '_'.
func optionEnvironment(opts domain.Options) map[string]string {
	env := make(map[string]string, len(opts))
	for k, v := range opts {
		env[OptionEnvPrefix+envKey(k)] = fmt.Sprint(v)
	}
	return env
}

func envKey(k string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, k)
}

// resolveEnvironment layers overrides on top of the system environment.
// The result is sorted for deterministic process setup.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}
