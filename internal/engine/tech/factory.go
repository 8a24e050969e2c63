package tech

import "go.trai.ch/i18nhtml/internal/core/ports"

var _ ports.TechFactory = (*Factory)(nil)

// Factory creates Builders sharing their collaborators.
type Factory struct {
	evaluator ports.Evaluator
	renderer  ports.Renderer
	logger    ports.Logger
	recorder  ports.Recorder
	telemetry ports.Telemetry
}

// NewFactory creates a new Factory.
func NewFactory(
	evaluator ports.Evaluator,
	renderer ports.Renderer,
	logger ports.Logger,
	recorder ports.Recorder,
	telemetry ports.Telemetry,
) *Factory {
	return &Factory{
		evaluator: evaluator,
		renderer:  renderer,
		logger:    logger,
		recorder:  recorder,
		telemetry: telemetry,
	}
}

// New returns an unconfigured Builder.
func (f *Factory) New() ports.Tech {
	return NewBuilder(f.evaluator, f.renderer, f.logger, f.recorder, f.telemetry)
}
