// Package configcache skips the legacy configure step when its last run is still valid.
package configcache

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/bochsbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache decides whether the legacy build must be reconfigured and runs the
// configure script when it must.
type Cache struct {
	markers  ports.MarkerStore
	executor ports.Executor
	logger   ports.Logger
	cfg      *domain.Config
}

// New creates a new Cache.
func New(markers ports.MarkerStore, executor ports.Executor, logger ports.Logger, cfg *domain.Config) *Cache {
	return &Cache{
		markers:  markers,
		executor: executor,
		logger:   logger,
		cfg:      cfg,
	}
}

// Ensure configures the legacy build inside ec.Dir unless the marker is at least as
// new as the configure script. The marker is rewritten only after a successful run.
func (c *Cache) Ensure(ctx context.Context, ec domain.ExecContext) error {
	marker := c.cfg.MarkerPath()
	script := c.cfg.ConfigureScript()

	fresh, err := c.markers.Fresh(marker, script)
	if err != nil {
		return err
	}
	if fresh {
		c.logger.Info("skipping configuration as it's already up to date")
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Cached()
		}
		return nil
	}

	c.logger.Info("configuring the legacy build")
	if err := c.executor.Run(ctx, ec.Command(c.cfg.Shell.Path, scriptArg(ec.Dir, script))); err != nil {
		return err
	}

	if err := c.markers.Write(marker, script); err != nil {
		return errors.Join(domain.ErrMarkerWriteFailed, zerr.With(zerr.Wrap(err, "configure succeeded"), "marker", marker))
	}
	return nil
}

// scriptArg returns the configure script relative to dir in slash form, which is
// what the POSIX shell expects regardless of the host separator.
func scriptArg(dir, script string) string {
	rel, err := filepath.Rel(dir, script)
	if err != nil {
		return filepath.ToSlash(script)
	}
	return filepath.ToSlash(rel)
}
