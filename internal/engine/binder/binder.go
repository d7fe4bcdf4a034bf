// Package binder binds a fixed watch configuration to a component's
// update-decision hook.
package binder

import (
	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/engine/detector"
)

// Binder captures dependencies once and answers update decisions for any
// component it is invoked with. It is immutable and safe for concurrent use.
type Binder struct {
	deps     domain.Dependencies
	detector *detector.Detector
}

// New creates a Binder over deps.
func New(deps domain.Dependencies, det *detector.Detector) *Binder {
	return &Binder{
		deps:     domain.NewDependencies(deps.Props, deps.State, deps.Mode, deps.Extra),
		detector: det,
	}
}

// ShouldUpdate reads the current props and state from self and compares them
// against nextProps and nextState.
func (b *Binder) ShouldUpdate(self domain.Component, nextProps, nextState any) bool {
	return b.detector.ShouldUpdate(b.input(self, nextProps, nextState))
}

// Explain is ShouldUpdate that also reports the first changed path.
func (b *Binder) Explain(self domain.Component, nextProps, nextState any) (domain.Change, bool) {
	return b.detector.Explain(b.input(self, nextProps, nextState))
}

// Dependencies returns a copy of the bound configuration.
func (b *Binder) Dependencies() domain.Dependencies {
	return domain.NewDependencies(b.deps.Props, b.deps.State, b.deps.Mode, b.deps.Extra)
}

func (b *Binder) input(self domain.Component, nextProps, nextState any) domain.Input {
	return domain.Input{
		Props:       b.deps.Props,
		State:       b.deps.State,
		BeforeProps: self.Props(),
		AfterProps:  nextProps,
		BeforeState: self.State(),
		AfterState:  nextState,
		Mode:        b.deps.Mode,
		Extra:       b.deps.Extra,
	}
}
