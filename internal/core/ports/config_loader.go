package ports

import "go.trai.ch/shouldupdate/internal/core/domain"

// ConfigLoader defines the interface for loading watch configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the watch file at path and returns the bound dependencies.
	Load(path string) (domain.Dependencies, error)
}
