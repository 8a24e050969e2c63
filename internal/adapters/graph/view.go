package graph

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Node = (*Node)(nil)

// Node is the view of the graph for one node directory.
type Node struct {
	graph *Graph
	path  string
	name  string
	dir   string
}

func newNode(g *Graph, path string) *Node {
	dir := filepath.Join(g.project.Root, filepath.FromSlash(path))
	return &Node{graph: g, path: path, name: filepath.Base(dir), dir: dir}
}

// Path returns the node directory relative to the project root.
func (n *Node) Path() string { return n.path }

// Name returns the base name of the node directory.
func (n *Node) Name() string { return n.name }

// UnmaskTargetName replaces the node mask with the node name.
func (n *Node) UnmaskTargetName(name string) string {
	return strings.ReplaceAll(name, domain.NodeMask, n.name)
}

// ResolvePath returns the absolute path of a target name.
// Absolute names are cleaned and returned as is.
func (n *Node) ResolvePath(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(n.dir, filepath.FromSlash(name))
}

// Languages returns a copy of the ordered project locales.
func (n *Node) Languages() []string {
	return slices.Clone(n.graph.project.Languages)
}

// Parallelism returns the project parallelism, or the default when it is unset.
func (n *Node) Parallelism() int {
	if n.graph.project.Parallelism <= 0 {
		return domain.DefaultParallelism
	}
	return n.graph.project.Parallelism
}

// RequireSources waits for declared producers and verifies the remaining paths exist.
func (n *Node) RequireSources(ctx context.Context, paths []string) error {
	var undeclared []string
	for _, path := range paths {
		state, ok := n.graph.lookup(path)
		if !ok {
			undeclared = append(undeclared, path)
			continue
		}

		select {
		case <-state.done:
		default:
			n.graph.logger.Debug(fmt.Sprintf("%s waits for %s", n.path, path))
			select {
			case <-state.done:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if state.err != nil {
			err := zerr.With(zerr.Wrap(state.err, "source target failed"), "path", path)
			return errors.Join(domain.ErrUpstreamUnavailable, zerr.With(err, "producer", state.producer))
		}
	}

	missing, err := n.graph.verifier.MissingFiles(undeclared)
	if err != nil {
		return errors.Join(domain.ErrUpstreamUnavailable, err)
	}
	if len(missing) > 0 {
		err := zerr.With(zerr.New("source does not exist"), "paths", missing)
		return errors.Join(domain.ErrUpstreamUnavailable, zerr.With(err, "node", n.path))
	}
	return nil
}

// Cache returns the fingerprint cache of target.
func (n *Node) Cache(target string) ports.FingerprintCache {
	return newFileCache(n.graph, target)
}

// MarkValid confirms the target is declared for this run.
func (n *Node) MarkValid(target string) error {
	return n.graph.markValid(target)
}

// MarkResolved settles a valid target as available.
func (n *Node) MarkResolved(target string) error {
	return n.graph.settle(target, nil)
}

// RejectTarget settles the target as failed with cause.
func (n *Node) RejectTarget(target string, cause error) error {
	if cause == nil {
		cause = domain.ErrTargetRejected
	}
	return n.graph.settle(target, cause)
}
