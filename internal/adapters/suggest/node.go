package suggest

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/internal/core/ports"
)

// NodeID is the Graft node for the threshold suggester.
const NodeID graft.ID = "adapter.suggester"

func init() {
	graft.Register(graft.Node[ports.Suggester]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Suggester, error) {
			// Without an API key requests cannot succeed anyway, so fall
			// back to the offline heuristic.
			if os.Getenv(APIKeyEnv) == "" {
				return NewHeuristic(), nil
			}
			return NewOpenAI()
		},
	})
}
