// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jyotish/internal/adapters/cache"
	_ "go.trai.ch/jyotish/internal/adapters/config"
	_ "go.trai.ch/jyotish/internal/adapters/ephemeris"
	_ "go.trai.ch/jyotish/internal/adapters/logger"
	_ "go.trai.ch/jyotish/internal/adapters/metrics"
	_ "go.trai.ch/jyotish/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/jyotish/internal/app"
	_ "go.trai.ch/jyotish/internal/engine/validator"
)
