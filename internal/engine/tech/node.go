package tech

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/adapters/logger"
	"go.trai.ch/i18nhtml/internal/adapters/metrics"
	"go.trai.ch/i18nhtml/internal/adapters/render"
	"go.trai.ch/i18nhtml/internal/adapters/telemetry/progrock"
	"go.trai.ch/i18nhtml/internal/core/ports"
)

// NodeID is the unique identifier for the tech factory Graft node.
const NodeID graft.ID = "engine.tech"

func init() {
	graft.Register(graft.Node[ports.TechFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hcldata.NodeID, render.NodeID, logger.NodeID, metrics.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.TechFactory, error) {
			evaluator, err := graft.Dep[ports.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[*metrics.PrometheusRecorder](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(evaluator, renderer, log, recorder, telemetry), nil
		},
	})
}
