// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depres/internal/adapters/clock"
	_ "go.trai.ch/depres/internal/adapters/config"
	_ "go.trai.ch/depres/internal/adapters/logger"
	_ "go.trai.ch/depres/internal/adapters/metrics"
	_ "go.trai.ch/depres/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/depres/internal/adapters/versions"
	// Register app nodes.
	_ "go.trai.ch/depres/internal/app"
)
