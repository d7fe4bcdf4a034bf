package ports

import "go.trai.ch/shouldupdate/internal/core/domain"

// PathResolver looks up values inside nested structures.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve returns the value found at path inside structure.
	// The boolean is false when any segment of the path is missing or not traversable.
	Resolve(structure any, path domain.Path) (any, bool)
}
