// Package metrics implements build metric recorders.
package metrics

import (
	"time"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
)

var _ ports.Recorder = NoopRecorder{}

// NoopRecorder discards every observation.
type NoopRecorder struct{}

// DataEvaluated implements ports.Recorder.
func (NoopRecorder) DataEvaluated(string) {}

// TargetFinished implements ports.Recorder.
func (NoopRecorder) TargetFinished(string, domain.TargetStatus, time.Duration) {}
