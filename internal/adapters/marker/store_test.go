package marker_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bochsbuild/internal/adapters/marker"
	"go.trai.ch/bochsbuild/internal/core/domain"
)

func setup(t *testing.T) (markerPath, scriptPath string) {
	t.Helper()
	root := t.TempDir()
	scriptPath = filepath.Join(root, "bochs_config")
	require.NoError(t, os.WriteFile(scriptPath, []byte("./configure --enable-x86-64\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "bochs_build"), 0o750))
	return filepath.Join(root, "bochs_build", "bochs_configured"), scriptPath
}

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestStore_Fresh_MissingMarker(t *testing.T) {
	markerPath, scriptPath := setup(t)

	fresh, err := marker.NewStore().Fresh(markerPath, scriptPath)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestStore_Fresh_Timestamps(t *testing.T) {
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	tests := []struct {
		name   string
		marker time.Time
		script time.Time
		want   bool
	}{
		{name: "marker newer than script", marker: base.Add(time.Minute), script: base, want: true},
		{name: "marker same age as script", marker: base, script: base, want: true},
		{name: "marker older than script", marker: base, script: base.Add(time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markerPath, scriptPath := setup(t)
			require.NoError(t, os.WriteFile(markerPath, []byte("x"), 0o600))
			touch(t, markerPath, tt.marker)
			touch(t, scriptPath, tt.script)

			fresh, err := marker.NewStore().Fresh(markerPath, scriptPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fresh)
		})
	}
}

func TestStore_Fresh_MissingScript(t *testing.T) {
	markerPath, scriptPath := setup(t)
	require.NoError(t, os.Remove(scriptPath))

	_, err := marker.NewStore().Fresh(markerPath, scriptPath)
	assert.ErrorIs(t, err, domain.ErrConfigureScriptMissing)
}

func TestStore_Write_MakesMarkerFresh(t *testing.T) {
	markerPath, scriptPath := setup(t)
	touch(t, scriptPath, time.Now().Add(-time.Minute))

	store := marker.NewStore()
	require.NoError(t, store.Write(markerPath, scriptPath))

	fresh, err := store.Fresh(markerPath, scriptPath)
	require.NoError(t, err)
	assert.True(t, fresh)

	data, err := os.ReadFile(markerPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "bochs_config xxh64:"))
}

func TestStore_Write_FutureDatedScript(t *testing.T) {
	markerPath, scriptPath := setup(t)
	future := time.Now().Add(time.Hour).Truncate(time.Second)
	touch(t, scriptPath, future)

	store := marker.NewStore()
	require.NoError(t, store.Write(markerPath, scriptPath))

	fresh, err := store.Fresh(markerPath, scriptPath)
	require.NoError(t, err)
	assert.True(t, fresh)

	info, err := os.Stat(markerPath)
	require.NoError(t, err)
	assert.False(t, info.ModTime().Before(future))
}

func TestStore_Write_RecordsScriptDigest(t *testing.T) {
	markerPath, scriptPath := setup(t)
	store := marker.NewStore()

	require.NoError(t, store.Write(markerPath, scriptPath))
	first, err := os.ReadFile(markerPath) //nolint:gosec // test path
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(scriptPath, []byte("./configure --enable-debugger\n"), 0o600))
	require.NoError(t, store.Write(markerPath, scriptPath))
	second, err := os.ReadFile(markerPath) //nolint:gosec // test path
	require.NoError(t, err)

	assert.NotEqual(t, string(first), string(second))
}

func TestStore_Write_MissingBuildDir(t *testing.T) {
	_, scriptPath := setup(t)
	markerPath := filepath.Join(t.TempDir(), "absent", "bochs_configured")

	err := marker.NewStore().Write(markerPath, scriptPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write configuration marker")
}
