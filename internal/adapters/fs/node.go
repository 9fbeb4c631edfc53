package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swatch/internal/core/ports"
)

const (
	WalkerNodeID     graft.ID = "adapter.fs.walker"
	HasherNodeID     graft.ID = "adapter.fs.hasher"
	StatSignerNodeID graft.ID = "adapter.fs.statsigner"
)

func init() {
	// Walker Node (Concrete implementation shared by Hasher and StatSigner)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	// StatSigner Node
	graft.Register(graft.Node[ports.StatSigner]{
		ID:        StatSignerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.StatSigner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewStatSigner(walker), nil
		},
	})
}
