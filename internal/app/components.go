package app

import (
	"go.verdant.dev/verdant/internal/core/ports"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

// Components contains all the initialized application components. This
// struct provides controlled access to components needed by the CLI
// layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Datasets ports.DatasetStore
	Catalog  ports.DatasetCatalog
	Engine   *recommend.Engine
	Profiles ports.ProfileStore
	Pending  ports.PendingQueue
	Watcher  ports.Watcher
	Tracer   ports.Tracer
}
