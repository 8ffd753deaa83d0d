package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rake/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/adapters/platform" //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/adapters/rakefile" //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rake/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rakefile.NodeID,
			config.NodeID,
			shell.NodeID,
			fs.NodeID,
			platform.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	rakefiles, err := graft.Dep[ports.RakefileLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	procs, err := graft.Dep[ports.ProcessRunner](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	plat, err := graft.Dep[ports.Platform](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(rakefiles, settings, procs, fsys, plat, log), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
