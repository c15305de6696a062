package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/jyotish/internal/adapters/config"
	"go.trai.ch/jyotish/internal/adapters/logger"
	"go.trai.ch/jyotish/internal/adapters/metrics"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
)

// NodeID is the unique identifier for the cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.ChartCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, metrics.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ChartCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			observer, err := graft.Dep[*metrics.CacheMetrics](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(clockwork.NewRealClock(), cfg.CacheCapacity,
				WithObserver(observer),
				WithLogger(log),
			), nil
		},
	})
}
