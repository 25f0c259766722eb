package app

import (
	"context"
	"errors"

	"go.trai.ch/reform/internal/adapters/cache" //nolint:depguard // Wired in app layer
	"go.trai.ch/reform/internal/core/domain"
)

// FileState reports whether a candidate would be skipped by the next run.
type FileState string

const (
	// StateCached means the file content matches its cached fingerprint.
	StateCached FileState = "cached"
	// StateStale means the file is new or changed since it was last formatted.
	StateStale FileState = "stale"
	// StateUnreadable means the file could not be hashed.
	StateUnreadable FileState = "unreadable"
)

// FileStatus is one line of the status listing.
type FileStatus struct {
	Candidate domain.Candidate `json:"candidate"`
	State     FileState        `json:"state"`
}

// Status lists every candidate with its cache state without running the engine.
func (a *App) Status(ctx context.Context, configPath string) ([]FileStatus, error) {
	cfg, err := a.loadConfig(RunOptions{ConfigPath: configPath})
	if err != nil {
		return nil, err
	}

	candidates, err := a.selector.Select(ctx, cfg.Selection())
	if err != nil {
		return nil, errors.Join(domain.ErrSelectionFailed, err)
	}

	fingerprints, err := a.store.Load(cfg.CachePath())
	if err != nil {
		a.logger.Warn("cache unreadable, every file is stale", "error", err.Error())
		fingerprints = cache.NewTable(nil)
	}

	out := make([]FileStatus, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state := StateStale
		fp, hashErr := a.hasher.FingerprintFile(c.Path)
		switch {
		case hashErr != nil:
			a.logger.Debug("cannot hash file", "path", c.Key, "error", hashErr.Error())
			state = StateUnreadable
		default:
			if cached, ok := fingerprints.Get(c.Key); ok && cached == fp {
				state = StateCached
			}
		}
		out = append(out, FileStatus{Candidate: c, State: state})
	}
	return out, nil
}
