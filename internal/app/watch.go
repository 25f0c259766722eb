package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/reform/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch runs once, then re-runs whenever files under the configured roots change,
// until ctx is cancelled. Per-run errors are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	w, err := a.watchers.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, watchRoots(cfg)...); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}

	if _, err := a.Run(ctx, opts); err != nil {
		if !isRunFailure(err) {
			return err
		}
		a.logger.Error(err)
	}

	// The debouncer fires on its own goroutine; runs are serialized through trigger.
	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case trigger <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	cacheDir := filepath.Dir(cfg.CachePath())
	go func() {
		for event := range w.Events() {
			if within(cacheDir, event.Path) {
				continue
			}
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes", "directories", strings.Join(cfg.Directories, ","))
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			a.logger.Info("change detected", "files", len(paths))
			if _, err := a.Run(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}

func watchRoots(cfg *domain.Config) []string {
	roots := make([]string, 0, len(cfg.Directories))
	for _, dir := range cfg.Directories {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.BaseDir, dir)
		}
		roots = append(roots, dir)
	}
	return roots
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// isRunFailure reports whether err only describes per-file failures.
func isRunFailure(err error) bool {
	return errors.Is(err, domain.ErrFilesNeedFormatting) || errors.Is(err, domain.ErrRunHadFailures)
}
