// Package shouldupdate decides whether a component must re-render because a
// watched path inside its props or state changed.
//
// A decision compares the value at every watched path before and after an
// update. Props paths are checked first, then state paths, and the first
// difference wins:
//
//	changed := shouldupdate.ShouldUpdate(shouldupdate.Options{
//		Dependencies: shouldupdate.Paths("user.profile.firstName"),
//		Props:        current,
//		NextProps:    next,
//	})
//
// CreateShouldUpdate binds a configuration once and returns a Hook that reads
// the current props and state from the component it is called with.
package shouldupdate

import (
	"go.trai.ch/shouldupdate/internal/adapters/equality"
	"go.trai.ch/shouldupdate/internal/adapters/resolver"
	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/engine/binder"
	"go.trai.ch/shouldupdate/internal/engine/detector"
)

type (
	// Path identifies a location inside a nested structure, such as
	// "user.profile.firstName" or "items[0].id".
	Path = domain.Path

	// Component exposes the current props and state a Hook compares against.
	Component = domain.Component

	// Snapshot is a Component holding fixed props and state.
	Snapshot = domain.Snapshot

	// Change describes the first watched path found to differ.
	Change = domain.Change
)

var std = detector.New(resolver.New(), equality.New())

// Options holds the arguments of a single decision.
type Options struct {
	// Dependencies lists the watched props paths.
	Dependencies []Path
	Props        any
	NextProps    any

	// StateDependencies lists the watched state paths.
	StateDependencies []Path
	State             any
	NextState         any

	// Shallow compares by identity instead of by structure.
	Shallow bool

	// Extra is carried along untouched.
	Extra map[string]any
}

// Config is the configuration bound by CreateShouldUpdate.
type Config struct {
	Dependencies      []Path
	StateDependencies []Path
	Shallow           bool
	Extra             map[string]any
}

// Hook is an update-decision callback. self supplies the current props and
// state; nextProps and nextState are the incoming values.
type Hook func(self Component, nextProps, nextState any) bool

// ParsePath returns the Path for a raw dotted/bracketed string.
func ParsePath(raw string) Path {
	return domain.NewPath(raw)
}

// PathOf returns a Path built from explicit string and int keys.
func PathOf(keys ...any) Path {
	return domain.PathOf(keys...)
}

// Paths converts raw strings into paths.
func Paths(raws ...string) []Path {
	return domain.NewPaths(raws)
}

// NewSnapshot returns a Component holding props and state.
func NewSnapshot(props, state any) Snapshot {
	return domain.NewSnapshot(props, state)
}

// ShouldUpdate reports whether any watched path differs between Props and
// NextProps or between State and NextState.
func ShouldUpdate(opts Options) bool {
	return std.ShouldUpdate(opts.input())
}

// Explain returns the first watched path that differs, if any.
func Explain(opts Options) (Change, bool) {
	return std.Explain(opts.input())
}

// CreateShouldUpdate binds cfg and returns a Hook. The returned Hook holds no
// mutable state and may be shared between components and goroutines.
func CreateShouldUpdate(cfg Config) Hook {
	b := binder.New(domain.NewDependencies(
		cfg.Dependencies,
		cfg.StateDependencies,
		domain.ModeOf(cfg.Shallow),
		cfg.Extra,
	), std)
	return b.ShouldUpdate
}

// Bind fixes the receiver of h, for frameworks whose callback only takes the
// incoming props and state.
func (h Hook) Bind(self Component) func(nextProps, nextState any) bool {
	return func(nextProps, nextState any) bool {
		return h(self, nextProps, nextState)
	}
}

func (o Options) input() domain.Input {
	return domain.Input{
		Props:       o.Dependencies,
		State:       o.StateDependencies,
		BeforeProps: o.Props,
		AfterProps:  o.NextProps,
		BeforeState: o.State,
		AfterState:  o.NextState,
		Mode:        domain.ModeOf(o.Shallow),
		Extra:       o.Extra,
	}
}
