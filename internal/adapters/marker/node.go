package marker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bochsbuild/internal/core/ports"
)

// NodeID is the unique identifier for the marker store Graft node.
const NodeID graft.ID = "adapter.marker_store"

func init() {
	graft.Register(graft.Node[ports.MarkerStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkerStore, error) {
			return NewStore(), nil
		},
	})
}
