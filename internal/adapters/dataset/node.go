package dataset

import (
	"context"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/internal/adapters/logger"
	"go.verdant.dev/verdant/internal/core/ports"
)

const (
	// StoreNodeID is the Graft node for the dataset store.
	StoreNodeID graft.ID = "adapter.dataset_store"
	// CatalogNodeID is the Graft node for the dataset catalog.
	CatalogNodeID graft.ID = "adapter.dataset_catalog"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(FromEnv, log), nil
		},
	})

	graft.Register(graft.Node[*Catalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (*Catalog, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			return NewCatalog(store), nil
		},
	})
}
