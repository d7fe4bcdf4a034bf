package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shouldupdate/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/shouldupdate/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/shouldupdate/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/shouldupdate/internal/adapters/resolver"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shouldupdate/internal/adapters/snapshot"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shouldupdate/internal/core/ports"
	"go.trai.ch/shouldupdate/internal/engine/detector"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			snapshot.NodeID,
			resolver.NodeID,
			detector.NodeID,
			fingerprint.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	snapshots, err := graft.Dep[ports.SnapshotLoader](ctx)
	if err != nil {
		return nil, err
	}

	pathResolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[*detector.Detector](ctx)
	if err != nil {
		return nil, err
	}

	fp, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, snapshots, pathResolver, det, fp, log), nil
}
