package ports

import "go.trai.ch/reform/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields the defaults
	// with BaseDir set to the file's directory.
	Load(path string) (*domain.Config, error)
}
