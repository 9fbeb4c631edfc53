package sass

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swatch/internal/adapters/logger"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports"
)

const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.CompilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg domain.CompilerConfig) (ports.Compiler, error) {
				return NewCompiler(cfg, log)
			}, nil
		},
	})
}
