// Package marker persists the configuration marker of the legacy build.
package marker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bochsbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.MarkerStore on the local filesystem.
//
// Only the marker's existence and modification time are meaningful. Its content
// records which script state it was written for, for humans reading the build tree.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Fresh reports whether the marker exists and its mtime is not before the script's.
func (s *Store) Fresh(markerPath, scriptPath string) (bool, error) {
	scriptInfo, err := os.Stat(scriptPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, zerr.With(zerr.Wrap(domain.ErrConfigureScriptMissing, "cannot check configuration"),
				"path", scriptPath)
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrMarkerStatFailed.Error()), "path", scriptPath)
	}

	markerInfo, err := os.Stat(markerPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrMarkerStatFailed.Error()), "path", markerPath)
	}

	return !markerInfo.ModTime().Before(scriptInfo.ModTime()), nil
}

// Write creates or replaces the marker for scriptPath.
func (s *Store) Write(markerPath, scriptPath string) error {
	sum, err := digest(scriptPath)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("%s xxh64:%016x\n", filepath.Base(scriptPath), sum)

	//nolint:gosec // Path comes from the build config
	if err := os.WriteFile(markerPath, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", markerPath)
	}

	// A script dated in the future (clock skew, extracted archive) would leave a
	// fresh marker older than the script.
	scriptInfo, err := os.Stat(scriptPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", scriptPath)
	}
	stamp := time.Now()
	if scriptInfo.ModTime().After(stamp) {
		stamp = scriptInfo.ModTime()
	}
	if err := os.Chtimes(markerPath, stamp, stamp); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", markerPath)
	}
	return nil
}

func digest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the build config
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrMarkerWriteFailed.Error()), "path", path)
	}
	return h.Sum64(), nil
}
