// Package progrock records build steps on a progrock recorder.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	steps *Collector
	rec   *progrock.Recorder
}

// New creates a new Recorder that collects step results in memory.
func New() ports.Telemetry {
	return NewRecorder(NewCollector())
}

// NewRecorder creates a new Recorder writing to the given collector.
func NewRecorder(steps *Collector) *Recorder {
	return &Recorder{
		steps: steps,
		rec:   progrock.NewRecorder(steps),
	}
}

// Record starts recording a new vertex named after the step.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Steps returns the recorded steps in the order they started.
func (r *Recorder) Steps() []domain.StepResult {
	return r.steps.Steps()
}

// Close closes the underlying writer.
func (r *Recorder) Close() error {
	return r.steps.Close()
}
