// Package app implements the application layer for shouldupdate.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
	"go.trai.ch/shouldupdate/internal/engine/binder"
	"go.trai.ch/shouldupdate/internal/engine/detector"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	snapshots     ports.SnapshotLoader
	resolver      ports.PathResolver
	detector      *detector.Detector
	fingerprinter ports.Fingerprinter
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	snapshots ports.SnapshotLoader,
	resolver ports.PathResolver,
	det *detector.Detector,
	fingerprinter ports.Fingerprinter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		snapshots:     snapshots,
		resolver:      resolver,
		detector:      det,
		fingerprinter: fingerprinter,
		logger:        logger,
	}
}

// CheckRequest names the watch file and the four documents to compare.
// An empty document path means that structure is absent.
type CheckRequest struct {
	ConfigPath  string
	PropsBefore string
	PropsAfter  string
	StateBefore string
	StateAfter  string
	// Shallow forces shallow comparison regardless of the watch file.
	Shallow bool
}

// CheckResult is the outcome of a check.
type CheckResult struct {
	ShouldUpdate bool
	// Change is the first differing watched path. Zero when ShouldUpdate is false.
	Change       domain.Change
	Dependencies domain.Dependencies
}

// Check loads the watch file and documents and decides whether an update is needed.
func (a *App) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	deps, err := a.loadDependencies(req.ConfigPath)
	if err != nil {
		return CheckResult{}, err
	}
	if req.Shallow {
		deps.Mode = domain.ModeShallow
	}

	docs, err := a.loadSnapshots(ctx, req.PropsBefore, req.PropsAfter, req.StateBefore, req.StateAfter)
	if err != nil {
		return CheckResult{}, err
	}

	current := domain.NewSnapshot(docs[0], docs[2])
	change, changed := binder.New(deps, a.detector).Explain(current, docs[1], docs[3])
	if changed {
		a.logger.Info(fmt.Sprintf("%s path %s changed", change.Side, change.Path))
	}

	return CheckResult{
		ShouldUpdate: changed,
		Change:       change,
		Dependencies: deps,
	}, nil
}

// FingerprintRequest names the watch file and the documents to fingerprint.
type FingerprintRequest struct {
	ConfigPath string
	Props      string
	State      string
}

// PathFingerprint is the digest of one watched path.
type PathFingerprint struct {
	Side    domain.Side
	Path    domain.Path
	Present bool
	Digest  string
}

// Fingerprint computes one digest per watched path, props first then state,
// each in watch list order.
func (a *App) Fingerprint(ctx context.Context, req FingerprintRequest) ([]PathFingerprint, error) {
	deps, err := a.loadDependencies(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	docs, err := a.loadSnapshots(ctx, req.Props, req.State)
	if err != nil {
		return nil, err
	}

	sides := []struct {
		side  domain.Side
		paths domain.WatchList
		doc   any
	}{
		{domain.SideProps, deps.Props, docs[0]},
		{domain.SideState, deps.State, docs[1]},
	}

	results := make([]PathFingerprint, 0, len(deps.Props)+len(deps.State))
	for _, s := range sides {
		for _, path := range s.paths {
			value, ok := a.resolver.Resolve(s.doc, path)
			results = append(results, PathFingerprint{
				Side:    s.side,
				Path:    path,
				Present: ok,
				Digest:  a.fingerprinter.Fingerprint(value, ok),
			})
		}
	}
	return results, nil
}

func (a *App) loadDependencies(path string) (domain.Dependencies, error) {
	deps, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Dependencies{}, zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.Info(fmt.Sprintf("loaded %d props and %d state paths from %s", len(deps.Props), len(deps.State), path))
	return deps, nil
}

// loadSnapshots decodes every path concurrently. Results keep argument order.
func (a *App) loadSnapshots(ctx context.Context, paths ...string) ([]any, error) {
	docs := make([]any, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := a.snapshots.Load(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "failed to load snapshots")
	}
	return docs, nil
}
