package recommend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/internal/adapters/dataset"
)

// NodeID is the Graft node for the recommendation engine.
const NodeID graft.ID = "engine.recommend"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{dataset.StoreNodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[*dataset.Store](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(store), nil
		},
	})
}
