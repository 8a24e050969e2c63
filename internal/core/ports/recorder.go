package ports

import (
	"time"

	"go.trai.ch/i18nhtml/internal/core/domain"
)

// Recorder collects build metrics.
//
//go:generate go run go.uber.org/mock/mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type Recorder interface {
	// DataEvaluated counts one evaluation of a data artifact.
	DataEvaluated(node string)

	// TargetFinished records the outcome of one target.
	TargetFinished(node string, status domain.TargetStatus, duration time.Duration)
}
