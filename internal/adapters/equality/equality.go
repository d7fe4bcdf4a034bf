// Package equality implements deep and shallow value comparison.
package equality

import (
	"go.trai.ch/shouldupdate/internal/core/domain"
	"go.trai.ch/shouldupdate/internal/core/ports"
)

var _ ports.Comparer = (*Comparer)(nil)

// Comparer dispatches to Deep or Shallow depending on the requested mode.
type Comparer struct{}

// New creates a new Comparer.
func New() *Comparer {
	return &Comparer{}
}

// Equal reports whether a and b are equal under mode.
func (c *Comparer) Equal(mode domain.Mode, a, b any) bool {
	if mode == domain.ModeShallow {
		return Shallow(a, b)
	}
	return Deep(a, b)
}
