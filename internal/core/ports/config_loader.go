package ports

import "go.trai.ch/jyotish/internal/core/domain"

// ConfigLoader defines the interface for loading the calculator configuration.
type ConfigLoader interface {
	// Load reads the configuration discovered from the given working directory.
	// A missing file yields the defaults.
	Load(cwd string) (*domain.Config, error)
}
