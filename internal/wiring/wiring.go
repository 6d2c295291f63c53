// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsprops/internal/adapters/config"
	_ "go.trai.ch/tsprops/internal/adapters/logger"
	_ "go.trai.ch/tsprops/internal/adapters/store"
	_ "go.trai.ch/tsprops/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/tsprops/internal/app"
)
