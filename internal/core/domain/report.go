package domain

import (
	"errors"
	"fmt"
	"time"

	"go.trai.ch/zerr"
)

// TargetStatus represents the lifecycle state of one output target within an invocation.
type TargetStatus string

const (
	// TargetStatusPending indicates the target has not been processed yet.
	TargetStatusPending TargetStatus = "pending"
	// TargetStatusBuilt indicates the target was rebuilt and written.
	TargetStatusBuilt TargetStatus = "built"
	// TargetStatusSkipped indicates the target was up to date and nothing was written.
	TargetStatusSkipped TargetStatus = "skipped"
	// TargetStatusFailed indicates the target could not be produced.
	TargetStatusFailed TargetStatus = "failed"
)

// IsTerminal checks if a status is a terminal state (Built, Skipped, Failed).
func (s TargetStatus) IsTerminal() bool {
	switch s {
	case TargetStatusBuilt, TargetStatusSkipped, TargetStatusFailed:
		return true
	default:
		return false
	}
}

// TargetResult is the outcome of one target.
type TargetResult struct {
	Target   BuildTarget
	Status   TargetStatus
	Err      error
	Bytes    int
	Duration time.Duration
}

// BuildReport summarizes one build invocation of a tech.
type BuildReport struct {
	InvocationID string
	Node         string
	Results      []TargetResult
}

// Failed returns the results of targets that could not be produced.
func (r *BuildReport) Failed() []TargetResult {
	return r.filter(TargetStatusFailed)
}

// Succeeded returns the results of targets that were built or skipped.
func (r *BuildReport) Succeeded() []TargetResult {
	out := make([]TargetResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Status == TargetStatusBuilt || res.Status == TargetStatusSkipped {
			out = append(out, res)
		}
	}
	return out
}

// Written returns the number of targets whose destination was written.
func (r *BuildReport) Written() int {
	return len(r.filter(TargetStatusBuilt))
}

// Result returns the result recorded for the target with the given path.
func (r *BuildReport) Result(path string) (TargetResult, bool) {
	for _, res := range r.Results {
		if res.Target.Path == path {
			return res, true
		}
	}
	return TargetResult{}, false
}

// Err returns nil when every target settled without failure. Otherwise it returns
// an error matching ErrPartialFailure that enumerates the failed and the succeeded
// targets. A target left unsettled counts as failed.
func (r *BuildReport) Err() error {
	var (
		failedNames []string
		causes      = []error{ErrPartialFailure}
	)
	for _, res := range r.Results {
		var cause error
		switch {
		case res.Status == TargetStatusFailed:
			cause = res.Err
		case !res.Status.IsTerminal():
			cause = ErrTargetUnsettled
		default:
			continue
		}
		failedNames = append(failedNames, res.Target.Path)
		causes = append(causes, zerr.Wrap(cause, fmt.Sprintf("target %s", res.Target.Path)))
	}
	if len(failedNames) == 0 {
		return nil
	}

	succeeded := r.Succeeded()
	succeededNames := make([]string, 0, len(succeeded))
	for _, res := range succeeded {
		succeededNames = append(succeededNames, res.Target.Path)
	}

	err := zerr.With(zerr.Wrap(errors.Join(causes...), "targets failed"), "failed", failedNames)
	return zerr.With(err, "succeeded", succeededNames)
}

func (r *BuildReport) filter(status TargetStatus) []TargetResult {
	out := make([]TargetResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return out
}
