package ports

import "go.trai.ch/easyws/internal/core/domain"

// ConfigLoader defines the interface for loading the easyws configuration.
type ConfigLoader interface {
	// Load reads the configuration, applying defaults and environment overrides.
	Load() (*domain.Config, error)
}
