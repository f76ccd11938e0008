package profile

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// StoreNodeID is the Graft node for the profile store.
	StoreNodeID graft.ID = "adapter.profile_store"
	// QueueNodeID is the Graft node for the pending threshold queue.
	QueueNodeID graft.ID = "adapter.pending_queue"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Store, error) {
			return NewStore(StateDir())
		},
	})

	graft.Register(graft.Node[*Queue]{
		ID:        QueueNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Queue, error) {
			return NewQueue(StateDir()), nil
		},
	})
}
