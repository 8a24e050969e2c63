package ports

import (
	"context"

	"go.trai.ch/i18nhtml/internal/core/domain"
)

// Tech is one build step producing output targets from declared sources.
// The lifecycle is Configure, then any number of Sources/Targets/IsRebuildRequired
// queries, then Build.
//
//go:generate go run go.uber.org/mock/mockgen -source=tech.go -destination=mocks/mock_tech.go -package=mocks
type Tech interface {
	// Name returns the tech identifier.
	Name() string

	// Configure binds the tech to a node and resolves every source and target path.
	Configure(node Node, opts domain.TechOptions) error

	// Sources returns the resolved sources in role order.
	Sources() ([]domain.SourceReference, error)

	// Targets returns the output targets. It fails before Configure.
	Targets() ([]domain.BuildTarget, error)

	// IsRebuildRequired reports whether any tracked file of target changed since its last build.
	IsRebuildRequired(target domain.BuildTarget) (bool, error)

	// Build produces every stale target and resolves every fresh one.
	// The report is returned even when the error is non-nil, except for errors
	// raised before any target was examined.
	Build(ctx context.Context) (*domain.BuildReport, error)
}

// TechFactory creates unconfigured techs.
type TechFactory interface {
	New() Tech
}

// Evaluator evaluates a data artifact or a locale catalog into plain Go values.
type Evaluator interface {
	// Evaluate parses src in an isolated context. filename is used in diagnostics.
	Evaluate(src []byte, filename string) (any, error)
}

// Renderer renders one target of a tech.
type Renderer interface {
	// Render reads the template and both catalogs of req fresh from disk and
	// renders req.Document for req.Locale.
	Render(ctx context.Context, req *domain.RenderRequest) (string, error)
}
