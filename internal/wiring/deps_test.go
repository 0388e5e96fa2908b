package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bochsbuild/internal/app"
	_ "go.trai.ch/bochsbuild/internal/wiring"
)

// TestGraftDependencies resolves the full node graph the way main does.
func TestGraftDependencies(t *testing.T) {
	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotNil(t, c.App)
	assert.NotNil(t, c.Logger)
}
