package metrics

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the metrics Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[*CacheMetrics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*CacheMetrics, error) {
			return NewCacheMetrics()
		},
	})
}
