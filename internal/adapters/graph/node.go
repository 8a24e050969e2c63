package graph

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/i18nhtml/internal/adapters/cas"
	"go.trai.ch/i18nhtml/internal/adapters/fs"
	"go.trai.ch/i18nhtml/internal/adapters/logger"
	"go.trai.ch/i18nhtml/internal/core/ports"
)

// NodeID is the unique identifier for the graph factory Graft node.
const NodeID graft.ID = "adapter.graph"

func init() {
	graft.Register(graft.Node[ports.GraphFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, fs.HasherNodeID, fs.VerifierNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.GraphFactory, error) {
			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(store, hasher, verifier, log), nil
		},
	})
}
