package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/i18nhtml/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/adapters/graph"              //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/adapters/metrics"            //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/i18nhtml/internal/engine/tech"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
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
			graph.NodeID,
			tech.NodeID,
			cas.NodeID,
			metrics.NodeID,
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
			progrock.NodeID,
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
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Telemetry: telemetry}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	graphs, err := graft.Dep[ports.GraphFactory](ctx)
	if err != nil {
		return nil, err
	}

	techs, err := graft.Dep[ports.TechFactory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.FingerprintStore](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, graphs, techs, store, recorder, log), nil
}
