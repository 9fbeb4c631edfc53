package ports

import "go.trai.ch/swatch/internal/core/domain"

// ConfigLoader defines the interface for loading the swatch configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. Relative directories in the
	// result are resolved against the file's directory.
	Load(path string) (*domain.Config, error)
}
