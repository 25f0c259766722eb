// Package config provides the configuration loader for reform.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/reform/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvSkip overrides the skip setting when set to a boolean value.
const EnvSkip = "REFORM_SKIP"

const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader that reads overrides from the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, getenv: os.Getenv}
}

// Load reads the configuration file at path. A missing or empty file yields the
// defaults. The base directory is always the directory containing path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg := domain.DefaultConfig(filepath.Dir(absPath))

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		l.logger.Debug("no config file, using defaults", "path", absPath)
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	default:
		var file Reformfile
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
		}
		if err := apply(cfg, &file); err != nil {
			return nil, zerr.With(err, "path", absPath)
		}
	}

	if v := l.getenv(EnvSkip); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidConfig, EnvSkip, v)
		}
		cfg.Skip = skip
	}

	return cfg, nil
}

// apply overlays the non-zero fields of file onto cfg.
func apply(cfg *domain.Config, file *Reformfile) error {
	if file.Version != "" && file.Version != supportedVersion {
		return zerr.With(domain.ErrInvalidConfig, "version", file.Version)
	}
	if file.Workers < 0 {
		return zerr.With(domain.ErrInvalidConfig, "workers", file.Workers)
	}

	if len(file.Directories) > 0 {
		cfg.Directories = file.Directories
	}
	if len(file.Includes) > 0 {
		cfg.Includes = file.Includes
	}
	cfg.Excludes = file.Excludes
	if file.Encoding != "" {
		cfg.Encoding = file.Encoding
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	cfg.Skip = file.Skip
	cfg.Workers = file.Workers
	cfg.RespectGitignore = file.RespectGitignore

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil || timeout < 0 {
			return zerr.With(domain.ErrInvalidConfig, "timeout", file.Timeout)
		}
		cfg.Timeout = timeout
	}

	if file.Engine.Kind != "" {
		cfg.Engine.Kind = file.Engine.Kind
	}
	cfg.Engine.Command = file.Engine.Command

	cfg.Options = cfg.Options.Merge(file.Options)
	return nil
}
