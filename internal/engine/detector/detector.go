// Package detector decides whether any watched path changed between two
// versions of a component's props and state.
package detector

import (
	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

// Detector compares watched paths of before and after structures.
// It holds no mutable state and is safe for concurrent use.
type Detector struct {
	resolver ports.PathResolver
	comparer ports.Comparer
}

// New creates a new Detector.
func New(resolver ports.PathResolver, comparer ports.Comparer) *Detector {
	return &Detector{
		resolver: resolver,
		comparer: comparer,
	}
}

// ShouldUpdate reports whether any watched path differs.
//
// Props paths are evaluated first, then state paths, each in list order. The
// first difference ends the evaluation. An empty list never reports a change.
func (d *Detector) ShouldUpdate(in domain.Input) bool {
	_, changed := d.Explain(in)
	return changed
}

// Explain returns the first watched path whose value differs, in the same
// order ShouldUpdate evaluates them.
func (d *Detector) Explain(in domain.Input) (domain.Change, bool) {
	for w := range in.Watches() {
		for _, path := range w.Paths {
			before, hadBefore := d.resolver.Resolve(w.Before, path)
			after, hasAfter := d.resolver.Resolve(w.After, path)

			if d.same(in.Mode, before, hadBefore, after, hasAfter) {
				continue
			}

			return domain.Change{
				Side:          w.Side,
				Path:          path,
				Before:        before,
				After:         after,
				BeforePresent: hadBefore,
				AfterPresent:  hasAfter,
			}, true
		}
	}
	return domain.Change{}, false
}

// same treats two absent values as equal and an absent value as different
// from any present one, including a present nil.
func (d *Detector) same(mode domain.Mode, before any, hadBefore bool, after any, hasAfter bool) bool {
	if !hadBefore || !hasAfter {
		return hadBefore == hasAfter
	}
	return d.comparer.Equal(mode, before, after)
}
