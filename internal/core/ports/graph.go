// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/i18nhtml/internal/core/domain"
)

// FingerprintCache answers staleness queries for one output target and records new fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type FingerprintCache interface {
	// NeedRebuildFile reports whether the file at path differs from the fingerprint
	// recorded under label, or when no fingerprint was recorded at all.
	NeedRebuildFile(label, path string) (bool, error)

	// CacheFileInfo records the current fingerprint of path under label.
	// Recorded fingerprints are not visible to other caches until Save is called.
	CacheFileInfo(label, path string) error

	// Save persists the recorded fingerprints.
	Save() error
}

// Node is the view of the build graph a tech gets for the node it is configured on.
type Node interface {
	// Path returns the node directory relative to the project root.
	Path() string

	// Name returns the node name, the base name of its directory.
	Name() string

	// UnmaskTargetName replaces the node mask in a target name with the node name.
	UnmaskTargetName(name string) string

	// ResolvePath returns the absolute path of a target name inside the node directory.
	ResolvePath(name string) string

	// Languages returns the ordered project locales.
	Languages() []string

	// Parallelism returns the bound on concurrent renders of one tech.
	Parallelism() int

	// RequireSources blocks until every path is available. Paths produced by other
	// techs in the same run are awaited; any other path must already exist.
	RequireSources(ctx context.Context, paths []string) error

	// Cache returns the fingerprint cache scoped to the target path.
	Cache(target string) FingerprintCache

	// MarkValid confirms the target is declared for this run.
	MarkValid(target string) error

	// MarkResolved settles the target as available to dependents.
	MarkResolved(target string) error

	// RejectTarget settles the target as failed. Dependents waiting on it receive cause.
	RejectTarget(target string, cause error) error
}

// GraphOptions configures a build graph for one run.
type GraphOptions struct {
	// Force makes every staleness query report the file as changed.
	Force bool
}

// Graph is the cooperative build graph of one run.
type Graph interface {
	// Node returns the graph view of the node at path.
	Node(path string) (Node, error)

	// Declare registers target as produced by the named unit.
	Declare(target, producer string) error
}

// GraphFactory creates a build graph for a loaded project.
type GraphFactory interface {
	New(project *domain.Project, opts GraphOptions) (Graph, error)
}
