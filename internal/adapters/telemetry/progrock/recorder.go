// Package progrock records build progress on a progrock tape, one vertex per target.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to a fresh in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{w: w, rec: progrock.NewRecorder(w)}
}

// Record starts a vertex. Vertices are identified by name, so recording the
// same target twice updates one vertex.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
}

// Close completes the root group and closes the writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	if err := r.rec.Close(); err != nil {
		return zerr.Wrap(err, "failed to close progress recorder")
	}
	return nil
}
