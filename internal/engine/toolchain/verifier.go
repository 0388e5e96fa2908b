// Package toolchain verifies the native compiler before any build step runs.
package toolchain

import (
	"bytes"
	"context"
	"errors"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Verifier checks that the configured compiler is the expected product for the
// expected architecture.
type Verifier struct {
	executor ports.Executor
	logger   ports.Logger
	cfg      domain.Toolchain
}

// NewVerifier creates a new Verifier.
func NewVerifier(executor ports.Executor, logger ports.Logger, cfg domain.Toolchain) *Verifier {
	return &Verifier{
		executor: executor,
		logger:   logger,
		cfg:      cfg,
	}
}

// Verify queries the compiler once and checks its banner.
// Every failure is a setup error; nothing is retried.
func (v *Verifier) Verify(ctx context.Context) error {
	compiler := v.cfg.Compiler

	v.logger.Info("checking for " + compiler)
	inv := domain.ExecContext{}.Command(compiler, v.cfg.Query...)
	out, err := v.executor.Output(ctx, inv)
	if err != nil {
		return setupError(domain.ErrToolchainMissing, err, compiler)
	}

	if v.cfg.Product != "" && !bytes.Contains(out, []byte(v.cfg.Product)) {
		return setupError(domain.ErrToolchainMismatch, nil, compiler, "expected", v.cfg.Product)
	}
	v.logger.Info(compiler + " found")

	if v.cfg.Arch != "" && !bytes.Contains(out, []byte(v.cfg.Arch)) {
		return setupError(domain.ErrToolchainArch, nil, compiler, "expected", v.cfg.Arch)
	}
	v.logger.Info(compiler + " targets the expected architecture (" + v.cfg.Arch + ")")

	return nil
}

func setupError(kind, cause error, compiler string, kv ...string) error {
	err := zerr.With(zerr.Wrap(kind, "toolchain check failed"), "compiler", compiler)
	for i := 0; i+1 < len(kv); i += 2 {
		err = zerr.With(err, kv[i], kv[i+1])
	}
	if cause != nil {
		return errors.Join(domain.ErrSetupFailed, err, cause)
	}
	return errors.Join(domain.ErrSetupFailed, err)
}
