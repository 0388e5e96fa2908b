// Package sequencer runs the steps of a build or clean in strict order.
package sequencer

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/bochsbuild/internal/engine/bridge"
	"go.trai.ch/bochsbuild/internal/engine/configcache"
	"go.trai.ch/zerr"
)

// Sequencer drives the supervisor and legacy builds for one configuration.
//
// Steps never change the process working directory or environment. Each command
// carries its own directory and, for the legacy build, the bridged environment.
type Sequencer struct {
	executor  ports.Executor
	logger    ports.Logger
	telemetry ports.Telemetry
	cache     *configcache.Cache
	cfg       *domain.Config
	env       *domain.ToolchainEnvironment
}

// New creates a new Sequencer for cfg.
func New(
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
	markers ports.MarkerStore,
	cfg *domain.Config,
) *Sequencer {
	return &Sequencer{
		executor:  executor,
		logger:    logger,
		telemetry: telemetry,
		cache:     configcache.New(markers, executor, logger, cfg),
		cfg:       cfg,
		env:       bridge.New(cfg.Toolchain, cfg.Shell).Build(),
	}
}

// Build runs the default path: supervisor build, build directory, configure, make.
// The first failing step ends the run.
func (s *Sequencer) Build(ctx context.Context) error {
	if err := s.step(ctx, "supervisor", s.buildSupervisor); err != nil {
		return err
	}

	if err := s.ensureBuildDir(); err != nil {
		return err
	}

	legacy := domain.ExecContext{Dir: s.cfg.BuildDir(), Env: s.env}

	if err := s.step(ctx, "configure", func(ctx context.Context) error {
		return s.cache.Ensure(ctx, legacy)
	}); err != nil {
		return err
	}

	return s.step(ctx, "make", func(ctx context.Context) error {
		return s.executor.Run(ctx, legacy.Command(s.cfg.Shell.Path, "-c", s.cfg.Make.MakeCommand()))
	})
}

// RemoveBuildDir deletes the legacy build directory and everything in it.
// A missing directory is not an error.
func (s *Sequencer) RemoveBuildDir(ctx context.Context) error {
	return s.step(ctx, "remove build directory", func(context.Context) error {
		dir := s.cfg.BuildDir()
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		s.logger.Info("removing " + dir)
		if err := os.RemoveAll(dir); err != nil {
			return errors.Join(domain.ErrBuildDirRemoveFailed, zerr.With(zerr.Wrap(err, "remove"), "path", dir))
		}
		return nil
	})
}

// CleanLegacy runs the legacy build's clean target inside the existing build directory.
// The directory itself is kept.
func (s *Sequencer) CleanLegacy(ctx context.Context) error {
	return s.step(ctx, "legacy clean", func(ctx context.Context) error {
		legacy := domain.ExecContext{Dir: s.cfg.BuildDir(), Env: s.env}
		return s.executor.Run(ctx, legacy.Command(s.cfg.Shell.Path, "-c", s.cfg.Make.CleanCommand()))
	})
}

// CleanSupervisor cleans the supervisor's build artifacts.
func (s *Sequencer) CleanSupervisor(ctx context.Context) error {
	return s.step(ctx, "supervisor clean", func(ctx context.Context) error {
		tool := s.cfg.PackageTool
		ec := domain.ExecContext{Dir: s.cfg.SupervisorDir()}
		return s.executor.Run(ctx, ec.Command(tool.Command, tool.CleanArgs...))
	})
}

func (s *Sequencer) buildSupervisor(ctx context.Context) error {
	tool := s.cfg.PackageTool
	ec := domain.ExecContext{Dir: s.cfg.SupervisorDir()}
	return s.executor.Run(ctx, ec.Command(tool.Command, tool.BuildArgs...))
}

func (s *Sequencer) ensureBuildDir() error {
	dir := s.cfg.BuildDir()
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrBuildDirCreateFailed, zerr.With(zerr.Wrap(err, "mkdir"), "path", dir))
	}
	return nil
}

func (s *Sequencer) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := s.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
