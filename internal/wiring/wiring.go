// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rake/internal/adapters/config"
	_ "go.trai.ch/rake/internal/adapters/fs"
	_ "go.trai.ch/rake/internal/adapters/logger"
	_ "go.trai.ch/rake/internal/adapters/platform"
	_ "go.trai.ch/rake/internal/adapters/rakefile"
	_ "go.trai.ch/rake/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/rake/internal/app"
)
