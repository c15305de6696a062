package app

import (
	"go.trai.ch/jyotish/internal/adapters/metrics" //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App     *App
	Logger  ports.Logger
	Config  *domain.Config
	Metrics *metrics.CacheMetrics
}

// jsonSwitch is implemented by loggers that can emit JSON.
type jsonSwitch interface {
	SetJSON(enable bool)
}

// NewComponents bundles the components and applies the configured log format.
func NewComponents(app *App, log ports.Logger, cfg *domain.Config, m *metrics.CacheMetrics) *Components {
	if s, ok := log.(jsonSwitch); ok && cfg.LogJSON {
		s.SetJSON(true)
	}
	return &Components{
		App:     app,
		Logger:  log,
		Config:  cfg,
		Metrics: m,
	}
}
