package domain

import "time"

const (
	// DefaultEncoding is the text encoding used when none is configured.
	DefaultEncoding = "UTF-8"

	// DefaultTimeout bounds a single transform invocation.
	DefaultTimeout = 30 * time.Second

	// EngineNormalize is the built-in whitespace normalizing engine.
	EngineNormalize = "normalize"

	// EngineCommand pipes content through an external command.
	EngineCommand = "command"
)

// DefaultIncludes is the include pattern applied when none is configured.
func DefaultIncludes() []string {
	return []string{"**/*.js"}
}

// EngineConfig selects and configures the transform engine.
type EngineConfig struct {
	Kind    string
	Command []string
}

// Config is the resolved configuration of one run.
type Config struct {
	// BaseDir is the project directory; cache keys and relative roots are resolved against it.
	BaseDir          string
	Directories      []string
	Includes         []string
	Excludes         []string
	Encoding         string
	CacheDir         string
	Skip             bool
	Workers          int
	Timeout          time.Duration
	RespectGitignore bool
	Engine           EngineConfig
	Options          Options
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig(baseDir string) *Config {
	return &Config{
		BaseDir:     baseDir,
		Directories: []string{"."},
		Includes:    DefaultIncludes(),
		Encoding:    DefaultEncoding,
		CacheDir:    ReformDirName,
		Timeout:     DefaultTimeout,
		Engine:      EngineConfig{Kind: EngineNormalize},
		Options:     DefaultOptions(),
	}
}

// Selection returns the file selection described by the config.
func (c *Config) Selection() Selection {
	return Selection{
		BaseDir:          c.BaseDir,
		Roots:            c.Directories,
		Includes:         c.Includes,
		Excludes:         c.Excludes,
		RespectGitignore: c.RespectGitignore,
	}
}

// CachePath returns the fingerprint cache location for this config.
func (c *Config) CachePath() string {
	return CachePath(c.BaseDir, c.CacheDir)
}
