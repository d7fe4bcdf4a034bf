// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shouldupdate/internal/adapters/config"
	_ "go.trai.ch/shouldupdate/internal/adapters/equality"
	_ "go.trai.ch/shouldupdate/internal/adapters/fingerprint"
	_ "go.trai.ch/shouldupdate/internal/adapters/logger"
	_ "go.trai.ch/shouldupdate/internal/adapters/resolver"
	_ "go.trai.ch/shouldupdate/internal/adapters/snapshot"
	// Register app and engine nodes.
	_ "go.trai.ch/shouldupdate/internal/app"
	_ "go.trai.ch/shouldupdate/internal/engine/detector"
)
