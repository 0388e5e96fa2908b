// Package app implements the application layer for bochsbuild.
package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/bochsbuild/internal/engine/sequencer"
	"go.trai.ch/bochsbuild/internal/engine/toolchain"
	"go.trai.ch/zerr"
)

// App dispatches a build mode to the verifier and the sequencer.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	markers      ports.MarkerStore
	telemetry    ports.Telemetry
}

// DispatchOptions holds the invocation options.
type DispatchOptions struct {
	// ConfigPath is the config file to load.
	ConfigPath string
	// ConfigRequired makes a missing config file an error.
	ConfigRequired bool
	// Jobs overrides the make parallelism when positive.
	Jobs int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	logger ports.Logger,
	markers ports.MarkerStore,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       logger,
		markers:      markers,
		telemetry:    telemetry,
	}
}

// Dispatch runs the mode named by token. An empty token selects the default build;
// an unrecognized token does too, after a warning.
func (a *App) Dispatch(ctx context.Context, token string, opts DispatchOptions) (err error) {
	defer func() {
		a.summarize()
		if cerr := a.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close telemetry")
		}
	}()

	cfg, err := a.configLoader.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Jobs > 0 {
		cfg.Make.Jobs = opts.Jobs
	}

	mode, recognized := domain.ParseMode(token)
	if !recognized {
		a.logger.Warn("unrecognized mode " + token + ", running the default build")
	}

	if err := a.run(ctx, mode, cfg); err != nil {
		if errors.Is(err, domain.ErrSetupFailed) {
			return err
		}
		return errors.Join(domain.ErrBuildExecutionFailed, zerr.With(zerr.Wrap(err, "run failed"), "mode", mode.String()))
	}
	return nil
}

func (a *App) run(ctx context.Context, mode domain.BuildMode, cfg *domain.Config) error {
	seq := sequencer.New(a.executor, a.logger, a.telemetry, a.markers, cfg)

	if mode == domain.ModeDefault {
		verifier := toolchain.NewVerifier(a.executor, a.logger, cfg.Toolchain)
		if err := verifier.Verify(ctx); err != nil {
			return err
		}
		return seq.Build(ctx)
	}

	// clean keeps the build directory and relies on it existing.
	if mode == domain.ModeClean {
		if err := seq.CleanLegacy(ctx); err != nil {
			return err
		}
	}
	if mode.RemovesBuildDir() {
		if err := seq.RemoveBuildDir(ctx); err != nil {
			return err
		}
	}
	if mode.CleansSupervisor() {
		return seq.CleanSupervisor(ctx)
	}
	return nil
}

// summarize logs one line per recorded step.
func (a *App) summarize() {
	for _, step := range a.telemetry.Steps() {
		took := step.Duration.Round(time.Millisecond).String()
		switch step.Status {
		case domain.StepDone:
			a.logger.Info(step.Name + " done in " + took)
		case domain.StepCached:
			a.logger.Info(step.Name + " up to date")
		case domain.StepFailed:
			a.logger.Warn(step.Name + " failed after " + took)
		case domain.StepRunning:
		}
	}
}
