package memstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.eeva.app/hub/internal/adapters/digest"
	"go.eeva.app/hub/internal/core/ports"
)

// NodeID is the unique identifier for the store registry Graft node.
const NodeID graft.ID = "adapter.store_registry"

func init() {
	graft.Register(graft.Node[ports.StoreRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{digest.NodeID},
		Run: func(ctx context.Context) (ports.StoreRegistry, error) {
			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(digester), nil
		},
	})
}
