// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.verdant.dev/verdant/internal/adapters/dataset"
	_ "go.verdant.dev/verdant/internal/adapters/logger"
	_ "go.verdant.dev/verdant/internal/adapters/profile"
	_ "go.verdant.dev/verdant/internal/adapters/suggest"
	_ "go.verdant.dev/verdant/internal/adapters/telemetry/progrock"
	_ "go.verdant.dev/verdant/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.verdant.dev/verdant/internal/app"
	_ "go.verdant.dev/verdant/internal/engine/recommend"
)
