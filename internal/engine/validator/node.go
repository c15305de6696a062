package validator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
)

// NodeID is the unique identifier for the validator Graft node.
const NodeID graft.ID = "engine.validator"

func init() {
	graft.Register(graft.Node[*Validator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Validator, error) {
			return New(clockwork.NewRealClock()), nil
		},
	})
}
