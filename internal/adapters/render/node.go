package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.template.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{hcldata.NodeID},
		Run: func(ctx context.Context) (ports.Renderer, error) {
			evaluator, err := graft.Dep[ports.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			return NewRenderer(evaluator), nil
		},
	})
}
