package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swatch/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/sass"               //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/swatch/internal/core/ports"
	"go.trai.ch/swatch/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.HasherNodeID,
			fs.StatSignerNodeID,
			cas.NodeID,
			sass.NodeID,
			progrock.NodeID,
			watcher.NodeID,
			pipeline.RegistryNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	signer, err := graft.Dep[ports.StatSigner](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	compilers, err := graft.Dep[ports.CompilerFactory](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*pipeline.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, fingerprinter, signer, stores, compilers, telemetry, w, registry), nil
}
