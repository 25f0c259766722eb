package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reform/cmd/reform/commands"
	"go.trai.ch/reform/internal/app"
	"go.trai.ch/reform/internal/build"
	"go.trai.ch/reform/internal/core/domain"
)

type mockApp struct {
	runFunc    func(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	checkFunc  func(ctx context.Context, opts app.RunOptions) (*domain.Report, error)
	statusFunc func(ctx context.Context, configPath string) ([]app.FileStatus, error)
	cleanFunc  func(ctx context.Context, configPath string) error
	watchFunc  func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*domain.Report, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Check(ctx context.Context, opts app.RunOptions) (*domain.Report, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Status(ctx context.Context, configPath string) ([]app.FileStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, configPath)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, configPath string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, configPath)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.RunOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

type logSettings struct {
	level slog.Level
	json  bool
}

func (l *logSettings) SetLevel(level slog.Level) { l.level = level }

func (l *logSettings) SetJSON(enable bool) { l.json = enable }

func newCLI(a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer, *logSettings) {
	logs := &logSettings{level: slog.LevelInfo}
	cli := commands.New(a, logs)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	return cli, out, logs
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				called = true
				return nil, nil
			},
		}

		cli, _, _ := newCLI(mock, "run",
			"-c", "custom.yaml",
			"-w", "3",
			"--timeout", "2s",
			"--no-cache",
			"--skip",
			"--fail-on-error",
			"-o", "json",
		)
		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, app.RunOptions{
			ConfigPath:  "custom.yaml",
			Workers:     3,
			Timeout:     2 * time.Second,
			NoCache:     true,
			Skip:        true,
			FailOnError: true,
			OutputMode:  "json",
		}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				return nil, nil
			},
		}

		cli, _, logs := newCLI(mock, "run")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
		assert.Equal(t, "auto", captured.OutputMode)
		assert.Zero(t, captured.Workers)
		assert.Equal(t, slog.LevelInfo, logs.level)
		assert.False(t, logs.json)
	})

	t.Run("ci flag selects linear output", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				return nil, nil
			},
		}

		cli, _, _ := newCLI(mock, "run", "--ci")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("verbose enables debug logging and linear output", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
				captured = opts
				return nil, nil
			},
		}

		cli, _, logs := newCLI(mock, "run", "-v", "--log-format", "json")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, slog.LevelDebug, logs.level)
		assert.True(t, logs.json)
		assert.Equal(t, "linear", captured.OutputMode)
	})

	t.Run("short verbose flag before the subcommand", func(t *testing.T) {
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				called = true
				return nil, nil
			},
		}

		cli, _, logs := newCLI(mock, "-v", "run")
		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, slog.LevelDebug, logs.level)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				panic("should not be called")
			},
		}

		cli, _, _ := newCLI(mock, "run", "--log-format", "xml")
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli, _, _ := newCLI(mock, "run")
		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Report, error) {
				panic("should not be called")
			},
		}

		cli, _, _ := newCLI(mock, "run", "src")
		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Check(t *testing.T) {
	var captured app.RunOptions
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.RunOptions) (*domain.Report, error) {
			captured = opts
			return nil, domain.ErrFilesNeedFormatting
		},
	}

	cli, _, _ := newCLI(mock, "check", "-n", "-o", "linear")
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrFilesNeedFormatting)
	assert.True(t, captured.NoCache)
	assert.Equal(t, "linear", captured.OutputMode)
}

func TestCommands_Watch(t *testing.T) {
	var captured app.RunOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.RunOptions) error {
			captured = opts
			return nil
		},
	}

	cli, _, _ := newCLI(mock, "watch", "-w", "2", "-c", "other.yaml")
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, 2, captured.Workers)
	assert.Equal(t, "other.yaml", captured.ConfigPath)
}

func TestCommands_Status(t *testing.T) {
	statuses := []app.FileStatus{
		{Candidate: domain.Candidate{Key: "src/a.js"}, State: app.StateCached},
		{Candidate: domain.Candidate{Key: "src/b.js"}, State: app.StateStale},
		{Candidate: domain.Candidate{Key: "src/c.js"}, State: app.StateUnreadable},
	}

	t.Run("lists files", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		var capturedPath string
		mock := &mockApp{
			statusFunc: func(_ context.Context, configPath string) ([]app.FileStatus, error) {
				capturedPath = configPath
				return statuses, nil
			},
		}

		cli, out, _ := newCLI(mock, "status", "-c", "x.yaml")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "x.yaml", capturedPath)
		assert.Contains(t, out.String(), "src/a.js")
		assert.Contains(t, out.String(), "src/b.js")
		assert.Contains(t, out.String(), "src/c.js")
		assert.Contains(t, out.String(), "3 file(s), 1 to format")
	})

	t.Run("json", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ string) ([]app.FileStatus, error) {
				return statuses, nil
			},
		}

		cli, out, _ := newCLI(mock, "status", "--json")
		require.NoError(t, cli.Execute(context.Background()))

		var decoded []app.FileStatus
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 3)
		assert.Equal(t, "src/b.js", decoded[1].Candidate.Key)
		assert.Equal(t, app.StateStale, decoded[1].State)
	})

	t.Run("propagates errors", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ string) ([]app.FileStatus, error) {
				return nil, domain.ErrSelectionFailed
			},
		}

		cli, _, _ := newCLI(mock, "status")
		require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrSelectionFailed)
	})
}

func TestCommands_Clean(t *testing.T) {
	var capturedPath string
	mock := &mockApp{
		cleanFunc: func(_ context.Context, configPath string) error {
			capturedPath = configPath
			return nil
		},
	}

	cli, _, _ := newCLI(mock, "clean")
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.ConfigFileName, capturedPath)
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli, out, _ := newCLI(&mockApp{}, "version")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t,
			"reform version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
			out.String())
	})

	t.Run("flag", func(t *testing.T) {
		cli, out, _ := newCLI(&mockApp{}, "--version")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "reform version "+build.Version)
		assert.Contains(t, out.String(), "commit: "+build.Commit)
	})

	t.Run("short flag is verbose, not version", func(t *testing.T) {
		cli, out, logs := newCLI(&mockApp{}, "-v", "version")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, slog.LevelDebug, logs.level)
		assert.Equal(t,
			"reform version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
			out.String())
	})
}
