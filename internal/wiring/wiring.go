// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/easyws/internal/adapters/config"
	_ "go.trai.ch/easyws/internal/adapters/git"
	_ "go.trai.ch/easyws/internal/adapters/logger"
	_ "go.trai.ch/easyws/internal/adapters/session"
	_ "go.trai.ch/easyws/internal/adapters/store"
	_ "go.trai.ch/easyws/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/easyws/internal/app"
)
