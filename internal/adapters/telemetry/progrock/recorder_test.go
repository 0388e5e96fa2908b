package progrock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bochsbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, progrock.New())
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "supervisor")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	steps := recorder.Steps()
	require.Len(t, steps, 1)
	assert.Equal(t, "supervisor", steps[0].Name)
	assert.Equal(t, domain.StepRunning, steps[0].Status)

	vertex.Complete(nil)
	require.NoError(t, recorder.Close())
}

func TestRecorder_Steps(t *testing.T) {
	recorder := progrock.New()

	_, supervisor := recorder.Record(context.Background(), "supervisor")
	supervisor.Complete(nil)

	_, configure := recorder.Record(context.Background(), "configure")
	configure.Cached()
	configure.Complete(nil)

	_, build := recorder.Record(context.Background(), "make")
	build.Complete(errors.New("exit status 2"))

	steps := recorder.Steps()
	require.Len(t, steps, 3)

	assert.Equal(t, "supervisor", steps[0].Name)
	assert.Equal(t, domain.StepDone, steps[0].Status)
	assert.Equal(t, "configure", steps[1].Name)
	assert.Equal(t, domain.StepCached, steps[1].Status)
	assert.Equal(t, "make", steps[2].Name)
	assert.Equal(t, domain.StepFailed, steps[2].Status)

	for _, step := range steps {
		assert.GreaterOrEqual(t, step.Duration, time.Duration(0))
	}
	assert.NoError(t, recorder.Close())
}

func TestCollector_LatestStateWins(t *testing.T) {
	steps := progrock.NewCollector()
	recorder := progrock.NewRecorder(steps)

	_, v := recorder.Record(context.Background(), "legacy clean")
	assert.Equal(t, domain.StepRunning, steps.Steps()[0].Status)

	v.Complete(nil)
	got := steps.Steps()
	require.Len(t, got, 1)
	assert.Equal(t, domain.StepDone, got[0].Status)
}
