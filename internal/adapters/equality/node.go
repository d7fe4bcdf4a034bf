package equality

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

// NodeID is the unique identifier for the comparer Graft node.
const NodeID graft.ID = "adapter.equality"

func init() {
	graft.Register(graft.Node[ports.Comparer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Comparer, error) {
			return New(), nil
		},
	})
}
