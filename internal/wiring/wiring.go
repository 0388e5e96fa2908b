// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bochsbuild/internal/adapters/config"
	_ "go.trai.ch/bochsbuild/internal/adapters/logger"
	_ "go.trai.ch/bochsbuild/internal/adapters/marker"
	_ "go.trai.ch/bochsbuild/internal/adapters/shell"
	_ "go.trai.ch/bochsbuild/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/bochsbuild/internal/app"
)
