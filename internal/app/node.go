package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdlc/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/msim"               //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/adapters/vhdl"               //nolint:depguard // Wired in app layer
	"go.trai.ch/hdlc/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the resolved application graph handed to the CLI.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			msim.NodeID,
			vhdl.NodeID,
			fs.ResolverNodeID,
			cas.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	builders, err := graft.Dep[ports.BuilderFactory](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.SourceResolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, builders, sources, resolver, store, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
