package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/jyotish/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/adapters/ephemeris" //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/validator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			ephemeris.NodeID,
			cache.NodeID,
			validator.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
			metrics.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	provider, err := graft.Dep[ports.PositionProvider](ctx)
	if err != nil {
		return nil, err
	}

	chartCache, err := graft.Dep[ports.ChartCache](ctx)
	if err != nil {
		return nil, err
	}

	val, err := graft.Dep[*validator.Validator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, provider, chartCache, val, log, tracer, clockwork.NewRealClock()), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[*metrics.CacheMetrics](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg, m), nil
}
