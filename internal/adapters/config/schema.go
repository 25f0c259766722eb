package config

// Reformfile represents the structure of the reform.yaml configuration file.
type Reformfile struct {
	Version          string         `yaml:"version"`
	Directories      []string       `yaml:"directories"`
	Includes         []string       `yaml:"includes"`
	Excludes         []string       `yaml:"excludes"`
	Encoding         string         `yaml:"encoding"`
	CacheDir         string         `yaml:"cacheDir"`
	Skip             bool           `yaml:"skip"`
	Workers          int            `yaml:"workers"`
	Timeout          string         `yaml:"timeout"`
	RespectGitignore bool           `yaml:"respectGitignore"`
	Engine           EngineDTO      `yaml:"engine"`
	Options          map[string]any `yaml:"options"`
}

// EngineDTO represents the engine section of the configuration.
type EngineDTO struct {
	Kind    string   `yaml:"kind"`
	Command []string `yaml:"command"`
}
