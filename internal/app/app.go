// Package app implements the application layer for reform.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/reform/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/detector"           //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/reform/internal/engine/orchestrator"
	"go.trai.ch/reform/internal/tui"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	selector     ports.FileSelector
	store        ports.CacheStore
	engines      ports.EngineFactory
	hasher       ports.Hasher
	orchestrator *orchestrator.Orchestrator
	watchers     ports.WatcherFactory
	logger       ports.Logger

	stdout         io.Writer
	stderr         io.Writer
	teaOptions     []tea.ProgramOption
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	selector ports.FileSelector,
	store ports.CacheStore,
	engines ports.EngineFactory,
	hasher ports.Hasher,
	orch *orchestrator.Orchestrator,
	watchers ports.WatcherFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader:   loader,
		selector:       selector,
		store:          store,
		engines:        engines,
		hasher:         hasher,
		orchestrator:   orch,
		watchers:       watchers,
		logger:         log,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects the JSON report and progress output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the reform.yaml to load. Empty means reform.yaml in the working directory.
	ConfigPath string
	// Workers overrides the configured worker count when positive.
	Workers int
	// Timeout overrides the configured per-file timeout when positive.
	Timeout time.Duration
	// NoCache reprocesses files even when their fingerprint is cached.
	NoCache bool
	// Skip returns before selecting any file.
	Skip bool
	// Check reports files that would change without writing them.
	Check bool
	// FailOnError turns per-file failures into a run error.
	FailOnError bool
	// OutputMode is one of auto, tui, linear or json.
	OutputMode string
}

// Run formats every selected file and returns the run report.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	// 1. Load the configuration
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Skip {
		a.logger.Info("formatting is skipped")
		return emptyReport(), nil
	}

	// 2. Select candidates
	candidates, err := a.selector.Select(ctx, cfg.Selection())
	if err != nil {
		return nil, errors.Join(domain.ErrSelectionFailed, err)
	}
	if len(candidates) == 0 {
		a.logger.Info("no files to format", "directories", strings.Join(cfg.Directories, ","))
		return emptyReport(), nil
	}
	a.logger.Debug("selected files", "count", len(candidates))

	// 3. Build the engine and codec
	engine, err := a.engines.New(cfg.Engine)
	if err != nil {
		return nil, err
	}
	codec, err := fs.NewCodec(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	// 4. Load the fingerprint cache
	cachePath := cfg.CachePath()
	fingerprints, err := a.store.Load(cachePath)
	if err != nil {
		a.logger.Warn("starting with an empty cache", "error", err.Error())
		fingerprints = cache.NewTable(nil)
	}

	// 5. Run the orchestrator
	report := a.orchestrate(ctx, candidates, fingerprints, engine, codec, orchestrator.Options{
		Workers:       cfg.Workers,
		Timeout:       cfg.Timeout,
		EngineOptions: cfg.Options,
		NoCache:       opts.NoCache,
		Check:         opts.Check,
	}, a.resolveMode(opts.OutputMode))

	// 6. Persist the cache
	if !opts.Check {
		if err := a.store.Save(cachePath, fingerprints); err != nil {
			a.logger.Warn("failed to persist cache", "error", err.Error())
		}
	}

	// 7. Report
	a.summarize(report)
	if opts.OutputMode == "json" {
		if err := writeJSON(a.stdout, report); err != nil {
			return report, err
		}
	}

	return report, runError(report, opts)
}

// Check runs in check mode: nothing is written and the cache is left untouched.
func (a *App) Check(ctx context.Context, opts RunOptions) (*domain.Report, error) {
	opts.Check = true
	return a.Run(ctx, opts)
}

func (a *App) loadConfig(opts RunOptions) (*domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.Skip {
		cfg.Skip = true
	}
	return cfg, nil
}

func (a *App) resolveMode(flag string) detector.OutputMode {
	return detector.ResolveMode(detector.DetectEnvironment(), flag)
}

// orchestrate runs the batch alongside the progress frontend selected by mode.
func (a *App) orchestrate(
	ctx context.Context,
	candidates []domain.Candidate,
	fingerprints ports.FingerprintCache,
	engine ports.TransformEngine,
	codec ports.TextCodec,
	opts orchestrator.Options,
	mode detector.OutputMode,
) *domain.Report {
	if mode == detector.ModeQuiet {
		return a.orchestrator.Run(ctx, candidates, fingerprints, engine, codec, opts)
	}

	stream := progrock.NewStream()
	recorder := progrock.NewRecorder(stream)
	orch := a.orchestrator.WithTelemetry(recorder)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var report *domain.Report
	g := new(errgroup.Group)

	// Orchestrator Routine
	g.Go(func() error {
		defer func() { _ = recorder.Close() }()
		report = orch.Run(ctx, candidates, fingerprints, engine, codec, opts)
		return nil
	})

	// Renderer Routine
	g.Go(func() error {
		defer stream.Detach()
		if mode == detector.ModeTUI {
			return a.runTUI(ctx, cancel, stream, len(candidates))
		}
		return linear.NewRenderer(a.stderr).Run(stream)
	})

	if err := g.Wait(); err != nil {
		a.logger.Warn("progress output failed", "error", err.Error())
	}
	return report
}

// runTUI shows the interactive view until the tape ends. Quitting the view
// early cancels the run.
func (a *App) runTUI(ctx context.Context, cancel context.CancelFunc, tape tui.TapeSource, total int) error {
	model := tui.NewModel(tape, total)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)

	_, err := tea.NewProgram(model, opts...).Run()
	if !model.Ended() {
		cancel()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return zerr.Wrap(err, "progress view failed")
	}
	return nil
}

func (a *App) summarize(report *domain.Report) {
	s := report.Summary
	a.logger.Info(fmt.Sprintf("formatted %d file(s)", s.Succeeded))
	a.logger.Info(fmt.Sprintf("failed %d file(s)", s.Failed))
	a.logger.Info(fmt.Sprintf("skipped %d file(s)", s.Skipped))
	a.logger.Info(fmt.Sprintf("elapsed %s", s.Duration().Round(time.Millisecond)))
}

// runError maps per-file failures to the run's exit status.
func runError(report *domain.Report, opts RunOptions) error {
	if report.Summary.Failed == 0 {
		return nil
	}

	if opts.Check {
		for _, res := range report.Files {
			if res.Reason == domain.ReasonWouldChange {
				return domain.ErrFilesNeedFormatting
			}
		}
		return domain.ErrRunHadFailures
	}

	if opts.FailOnError {
		return domain.ErrRunHadFailures
	}
	return nil
}

func emptyReport() *domain.Report {
	now := time.Now()
	return domain.NewReport(now, now, nil)
}

// Clean removes the fingerprint cache.
func (a *App) Clean(_ context.Context, configPath string) error {
	cfg, err := a.loadConfig(RunOptions{ConfigPath: configPath})
	if err != nil {
		return err
	}

	cachePath := cfg.CachePath()
	target := filepath.Dir(cachePath)
	// Never remove the project itself when the cache lives in the base directory.
	if filepath.Clean(target) == filepath.Clean(cfg.BaseDir) {
		target = cachePath
	}

	a.logger.Info("removing fingerprint cache...", "path", target)
	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove fingerprint cache"), "path", target)
	}
	a.logger.Info("removed fingerprint cache")
	return nil
}
