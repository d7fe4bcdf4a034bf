package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

// NodeID is the unique identifier for the path resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return New(), nil
		},
	})
}
