package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swatch/internal/adapters/logger"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.StoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StoreFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}

// NewFactory returns a ports.StoreFactory that adds a MirrorHook when
// cfg.MirrorDir is set.
func NewFactory(log ports.Logger) ports.StoreFactory {
	return func(cfg domain.CacheConfig, hook ports.WriteHook) (ports.CacheStore, error) {
		var hooks WriteHooks
		if cfg.MirrorDir != "" {
			hooks = append(hooks, NewMirrorHook(cfg.MirrorDir))
		}
		if hook != nil {
			hooks = append(hooks, hook)
		}

		var combined ports.WriteHook
		if len(hooks) > 0 {
			combined = hooks
		}
		return NewStore(cfg, combined, log)
	}
}
