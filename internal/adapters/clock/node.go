package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/depres/internal/core/ports"
)

// NodeID is the unique identifier for the time provider node.
const NodeID graft.ID = "adapter.clock"

func init() {
	graft.Register(graft.Node[ports.TimeProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TimeProvider, error) {
			return New(clockwork.NewRealClock()), nil
		},
	})
}
