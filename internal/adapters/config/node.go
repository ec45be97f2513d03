package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depres/internal/adapters/logger"
	"go.trai.ch/depres/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the configuration loader node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the process settings node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings()
		},
	})
}
