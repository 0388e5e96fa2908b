// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/bochsbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the orchestrator configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. When the file does not exist the
	// defaults are returned, unless required is set.
	Load(path string, required bool) (*domain.Config, error)
}
