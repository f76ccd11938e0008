package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/internal/adapters/dataset"
	"go.verdant.dev/verdant/internal/adapters/logger"
	"go.verdant.dev/verdant/internal/adapters/profile"
	"go.verdant.dev/verdant/internal/adapters/suggest"
	progrocktel "go.verdant.dev/verdant/internal/adapters/telemetry/progrock"
	"go.verdant.dev/verdant/internal/adapters/watcher"
	"go.verdant.dev/verdant/internal/core/ports"
	"go.verdant.dev/verdant/internal/engine/recommend"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			dataset.StoreNodeID,
			dataset.CatalogNodeID,
			recommend.NodeID,
			profile.StoreNodeID,
			profile.QueueNodeID,
			suggest.NodeID,
			progrocktel.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*dataset.Store](ctx)
			if err != nil {
				return nil, err
			}
			catalog, err := graft.Dep[*dataset.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[*recommend.Engine](ctx)
			if err != nil {
				return nil, err
			}
			profiles, err := graft.Dep[*profile.Store](ctx)
			if err != nil {
				return nil, err
			}
			pending, err := graft.Dep[*profile.Queue](ctx)
			if err != nil {
				return nil, err
			}
			suggester, err := graft.Dep[ports.Suggester](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, store, catalog, engine, profiles, pending, suggester, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			watcher.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	appInstance, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[*dataset.Store](ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := graft.Dep[*dataset.Catalog](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*recommend.Engine](ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := graft.Dep[*profile.Store](ctx)
	if err != nil {
		return nil, err
	}
	pending, err := graft.Dep[*profile.Queue](ctx)
	if err != nil {
		return nil, err
	}
	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      appInstance,
		Logger:   log,
		Datasets: store,
		Catalog:  catalog,
		Engine:   engine,
		Profiles: profiles,
		Pending:  pending,
		Watcher:  watch,
		Tracer:   tracer,
	}, nil
}
