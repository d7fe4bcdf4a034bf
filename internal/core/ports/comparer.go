package ports

import "go.trai.ch/shouldupdate/internal/core/domain"

// Comparer decides whether two resolved values are equal.
//
//go:generate go run go.uber.org/mock/mockgen -source=comparer.go -destination=mocks/mock_comparer.go -package=mocks
type Comparer interface {
	// Equal reports whether a and b are equal under the given mode.
	Equal(mode domain.Mode, a, b any) bool
}
