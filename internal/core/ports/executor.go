package ports

import (
	"context"

	"go.trai.ch/bochsbuild/internal/core/domain"
)

// Executor runs external commands described by invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the invocation, streaming its output, and blocks until it exits.
	//
	// A non-zero exit status is returned as an error carrying the exit code.
	Run(ctx context.Context, inv domain.Invocation) error

	// Output executes the invocation and returns its combined stdout and stderr.
	//
	// The output is returned even when the command exits with a non-zero status;
	// an error is returned only when the command could not be started.
	Output(ctx context.Context, inv domain.Invocation) ([]byte, error)
}
