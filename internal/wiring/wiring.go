// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/reform/internal/adapters/cache"
	_ "go.trai.ch/reform/internal/adapters/config"
	_ "go.trai.ch/reform/internal/adapters/engine"
	_ "go.trai.ch/reform/internal/adapters/fs"
	_ "go.trai.ch/reform/internal/adapters/logger"
	_ "go.trai.ch/reform/internal/adapters/telemetry"
	_ "go.trai.ch/reform/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/reform/internal/app"
	_ "go.trai.ch/reform/internal/engine/orchestrator"
)
