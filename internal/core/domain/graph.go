package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

var (
	// ErrUnitAlreadyExists is returned when attempting to add a unit with a name that already exists.
	ErrUnitAlreadyExists = zerr.New("unit already exists")

	// ErrMissingDependency is returned when a unit references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the unit dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")
)

// Graph represents the dependency graph between configured tech units.
// An edge exists when one unit requires a file another unit produces.
type Graph struct {
	units          map[InternedString]Unit
	producers      map[InternedString]InternedString
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		units:     make(map[InternedString]Unit),
		producers: make(map[InternedString]InternedString),
	}
}

// AddUnit adds a unit to the graph.
// It returns an error if a unit with the same name already exists or one of
// its outputs is already produced by another unit.
func (g *Graph) AddUnit(u *Unit) error {
	if _, exists := g.units[u.Name]; exists {
		return zerr.With(zerr.Wrap(ErrUnitAlreadyExists, "failed to add unit"), "unit", u.Name.String())
	}
	for _, out := range u.Outputs {
		if owner, taken := g.producers[out]; taken {
			err := zerr.With(zerr.Wrap(ErrTargetAlreadyDeclared, "failed to add unit"), "target", out.String())
			return zerr.With(err, "declared_by", owner.String())
		}
	}
	for _, out := range u.Outputs {
		g.producers[out] = u.Name
	}
	g.units[u.Name] = *u
	return nil
}

// Producer returns the unit producing the given path.
func (g *Graph) Producer(path string) (InternedString, bool) {
	name, ok := g.producers[NewInternedString(path)]
	return name, ok
}

// UnitCount returns the number of units in the graph.
func (g *Graph) UnitCount() int {
	return len(g.units)
}

// Link derives unit dependencies from inputs that are outputs of other units.
func (g *Graph) Link() {
	for name, u := range g.units {
		deps := make([]InternedString, 0, len(u.Inputs))
		for _, in := range u.Inputs {
			if producer, ok := g.producers[in]; ok && producer != name && !slices.Contains(deps, producer) {
				deps = append(deps, producer)
			}
		}
		u.Dependencies = deps
		g.units[name] = u
	}
}

// Validate checks for cycles in the graph using a topological sort.
// It populates the execution order if successful.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.units))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		unit, exists := g.units[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "invalid unit graph"), "dependency", u.String())
		}

		for _, dep := range unit.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Sorted iteration keeps the execution order deterministic for disconnected units.
	names := make([]InternedString, 0, len(g.units))
	for name := range g.units {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b InternedString) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		default:
			return 0
		}
	})

	for _, name := range names {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid unit graph"), "cycle", cyclePath)
}

// Walk returns an iterator that yields units in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.units[name]) {
				return
			}
		}
	}
}
