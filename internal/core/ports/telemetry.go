package ports

import (
	"context"

	"go.trai.ch/bochsbuild/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the steps of a run.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Steps returns the recorded steps in the order they started.
	Steps() []domain.StepResult
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded step.
type Vertex interface {
	// Complete marks the step as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the step as skipped because its result was already up to date.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
