// Package graph implements the local cooperative build graph techs report into.
package graph

import (
	"slices"
	"sync"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.GraphFactory = (*Factory)(nil)
	_ ports.Graph        = (*Graph)(nil)
)

// Factory creates one Graph per run.
type Factory struct {
	store    ports.FingerprintStore
	hasher   ports.FileHasher
	verifier ports.Verifier
	logger   ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	store ports.FingerprintStore,
	hasher ports.FileHasher,
	verifier ports.Verifier,
	logger ports.Logger,
) *Factory {
	return &Factory{store: store, hasher: hasher, verifier: verifier, logger: logger}
}

// New creates the graph of one run over project.
func (f *Factory) New(project *domain.Project, opts ports.GraphOptions) (ports.Graph, error) {
	if project == nil {
		return nil, zerr.New("project is nil")
	}
	cacheDir := project.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultCachePath()
	}
	return &Graph{
		project:  project,
		cacheDir: cacheDir,
		opts:     opts,
		store:    f.store,
		hasher:   f.hasher,
		verifier: f.verifier,
		logger:   f.logger,
		targets:  make(map[string]*targetState),
	}, nil
}

// targetState tracks one declared target. done is closed once the target settles.
type targetState struct {
	producer string
	valid    bool
	settled  bool
	err      error
	done     chan struct{}
}

// Graph is the build graph of one run. It is safe for concurrent use.
type Graph struct {
	project  *domain.Project
	cacheDir string
	opts     ports.GraphOptions
	store    ports.FingerprintStore
	hasher   ports.FileHasher
	verifier ports.Verifier
	logger   ports.Logger

	mu      sync.Mutex
	targets map[string]*targetState
}

// Node returns the view of the node declared at path.
func (g *Graph) Node(path string) (ports.Node, error) {
	if _, ok := g.project.Node(path); !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNodeNotFound, "unknown node"), "node", path)
	}
	return newNode(g, path), nil
}

// Declare registers target as produced by producer.
func (g *Graph) Declare(target, producer string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.targets[target]; ok {
		err := zerr.With(zerr.Wrap(domain.ErrTargetAlreadyDeclared, "failed to declare target"), "target", target)
		return zerr.With(err, "declared_by", existing.producer)
	}
	g.targets[target] = &targetState{producer: producer, done: make(chan struct{})}
	return nil
}

// Pending returns the declared targets that have not settled, sorted.
func (g *Graph) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var pending []string
	for target, state := range g.targets {
		if !state.settled {
			pending = append(pending, target)
		}
	}
	slices.Sort(pending)
	return pending
}

func (g *Graph) lookup(target string) (*targetState, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	state, ok := g.targets[target]
	return state, ok
}

func (g *Graph) markValid(target string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.targets[target]
	if !ok {
		return unknownTarget(target)
	}
	state.valid = true
	return nil
}

func (g *Graph) settle(target string, cause error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	state, ok := g.targets[target]
	if !ok {
		return unknownTarget(target)
	}
	if state.settled {
		return zerr.With(zerr.Wrap(domain.ErrTargetAlreadySettled, "failed to settle target"), "target", target)
	}
	if cause == nil && !state.valid {
		return zerr.With(zerr.Wrap(domain.ErrConfiguration, "target resolved before it was validated"), "target", target)
	}
	state.settled = true
	state.err = cause
	close(state.done)
	return nil
}

func unknownTarget(target string) error {
	return zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "target is not declared"), "target", target)
}
