package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/internal/core/ports"
)

// NodeID is the Graft node for the tracer.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return New(), nil
		},
	})
}
