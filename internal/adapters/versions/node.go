package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depres/internal/adapters/clock"
	"go.trai.ch/depres/internal/adapters/config"
	"go.trai.ch/depres/internal/core/ports"
)

// NodeID is the unique identifier for the module versions cache node.
const NodeID graft.ID = "adapter.versions_cache"

func init() {
	graft.Register(graft.Node[ports.ModuleVersionsStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{clock.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ModuleVersionsStore, error) {
			timeProvider, err := graft.Dep[ports.TimeProvider](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLayered(settings.CacheDir, settings.ReadOnlyCacheDir, timeProvider, NewLockingManager())
		},
	})
}
