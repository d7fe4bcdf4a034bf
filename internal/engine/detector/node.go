package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shouldupdate/internal/adapters/equality" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shouldupdate/internal/adapters/resolver" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shouldupdate/internal/core/ports"
)

// NodeID is the unique identifier for the detector Graft node.
const NodeID graft.ID = "engine.detector"

func init() {
	graft.Register(graft.Node[*Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			equality.NodeID,
		},
		Run: func(ctx context.Context) (*Detector, error) {
			pathResolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}

			comparer, err := graft.Dep[ports.Comparer](ctx)
			if err != nil {
				return nil, err
			}

			return New(pathResolver, comparer), nil
		},
	})
}
