package ephemeris

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jyotish/internal/adapters/config"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the position provider Graft node.
const NodeID graft.ID = "adapter.ephemeris"

func init() {
	graft.Register(graft.Node[ports.PositionProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PositionProvider, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg)
		},
	})
}

// New selects the provider named by the configuration.
func New(cfg *domain.Config) (ports.PositionProvider, error) {
	switch cfg.Ephemeris {
	case domain.EphemerisTable:
		p, err := LoadTable(cfg.EphemerisTable)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.EphemerisMean, "":
		return NewMeanProvider(), nil
	default:
		return nil, zerr.With(domain.ErrEphemerisTableInvalid, "source", string(cfg.Ephemeris))
	}
}
