package sequencer_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bochsbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports/mocks"
	"go.trai.ch/bochsbuild/internal/engine/sequencer"
	"go.uber.org/mock/gomock"
)

// invocation matches an Invocation by directory, command line and whether it
// carries the bridged environment.
type invocation struct {
	dir     string
	bridged bool
	command []string
}

func (m invocation) Matches(x any) bool {
	inv, ok := x.(domain.Invocation)
	if !ok {
		return false
	}
	if inv.Dir != m.dir || !slices.Equal(inv.Command, m.command) {
		return false
	}
	_, hasCC := inv.Env.Get("CC")
	return hasCC == m.bridged
}

func (m invocation) String() string {
	return fmt.Sprintf("invocation in %s (bridged=%t): %v", m.dir, m.bridged, m.command)
}

type fixture struct {
	executor *mocks.MockExecutor
	markers  *mocks.MockMarkerStore
	cfg      *domain.Config
	seq      *sequencer.Sequencer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := domain.DefaultConfig()
	cfg.Root = t.TempDir()
	cfg.Shell.Path = "bash"

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &fixture{
		executor: mocks.NewMockExecutor(ctrl),
		markers:  mocks.NewMockMarkerStore(ctrl),
		cfg:      cfg,
	}
	f.seq = sequencer.New(f.executor, logger, progrock.New(), f.markers, cfg)
	return f
}

func (f *fixture) supervisor(args ...string) invocation {
	return invocation{dir: f.cfg.SupervisorDir(), command: append([]string{"cargo"}, args...)}
}

func (f *fixture) legacy(args ...string) invocation {
	return invocation{dir: f.cfg.BuildDir(), bridged: true, command: append([]string{"bash"}, args...)}
}

func TestSequencer_Build(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), f.supervisor("build", "--release")).Return(nil),
		f.markers.EXPECT().Fresh(f.cfg.MarkerPath(), f.cfg.ConfigureScript()).
			DoAndReturn(func(string, string) (bool, error) {
				assert.DirExists(t, f.cfg.BuildDir())
				return false, nil
			}),
		f.executor.EXPECT().Run(gomock.Any(), f.legacy("../bochs_config")).Return(nil),
		f.markers.EXPECT().Write(f.cfg.MarkerPath(), f.cfg.ConfigureScript()).Return(nil),
		f.executor.EXPECT().Run(gomock.Any(), f.legacy("-c", "time make -s -j16")).Return(nil),
	)

	require.NoError(t, f.seq.Build(context.Background()))
}

func TestSequencer_Build_SkipsFreshConfiguration(t *testing.T) {
	f := newFixture(t)
	f.cfg.Make.Jobs = 4
	f.cfg.Make.Timed = false

	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), f.supervisor("build", "--release")).Return(nil),
		f.markers.EXPECT().Fresh(gomock.Any(), gomock.Any()).Return(true, nil),
		f.executor.EXPECT().Run(gomock.Any(), f.legacy("-c", "make -s -j4")).Return(nil),
	)

	require.NoError(t, f.seq.Build(context.Background()))
}

func TestSequencer_Build_SupervisorFailure(t *testing.T) {
	f := newFixture(t)
	runErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 101"))

	f.executor.EXPECT().Run(gomock.Any(), f.supervisor("build", "--release")).Return(runErr)

	err := f.seq.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.NoDirExists(t, f.cfg.BuildDir())
}

func TestSequencer_Build_ConfigureFailure(t *testing.T) {
	f := newFixture(t)
	runErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 1"))

	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), f.supervisor("build", "--release")).Return(nil),
		f.markers.EXPECT().Fresh(gomock.Any(), gomock.Any()).Return(false, nil),
		f.executor.EXPECT().Run(gomock.Any(), f.legacy("../bochs_config")).Return(runErr),
	)

	err := f.seq.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.DirExists(t, f.cfg.BuildDir())
}

func TestSequencer_Build_MakeFailure(t *testing.T) {
	f := newFixture(t)
	runErr := errors.Join(domain.ErrCommandFailed, errors.New("exit status 2"))

	gomock.InOrder(
		f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil),
		f.markers.EXPECT().Fresh(gomock.Any(), gomock.Any()).Return(true, nil),
		f.executor.EXPECT().Run(gomock.Any(), f.legacy("-c", "time make -s -j16")).Return(runErr),
	)

	assert.ErrorIs(t, f.seq.Build(context.Background()), domain.ErrCommandFailed)
}

func TestSequencer_RemoveBuildDir(t *testing.T) {
	f := newFixture(t)
	nested := filepath.Join(f.cfg.BuildDir(), "cpu")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "cpu.o"), []byte("obj"), 0o600))

	require.NoError(t, f.seq.RemoveBuildDir(context.Background()))
	assert.NoDirExists(t, f.cfg.BuildDir())
}

func TestSequencer_RemoveBuildDir_Missing(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.seq.RemoveBuildDir(context.Background()))
	assert.NoDirExists(t, f.cfg.BuildDir())
}

func TestSequencer_CleanLegacy(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().Run(gomock.Any(), f.legacy("-c", "make all-clean")).Return(nil)

	require.NoError(t, f.seq.CleanLegacy(context.Background()))
}

func TestSequencer_CleanSupervisor(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().Run(gomock.Any(), f.supervisor("clean")).Return(nil)

	require.NoError(t, f.seq.CleanSupervisor(context.Background()))
}
