package app

import (
	"fmt"
	"path"
	"strings"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

// plan holds every configured unit of a project and the units selected for a run.
type plan struct {
	graph *domain.Graph
	units []domain.Unit
	techs map[domain.InternedString]ports.Tech
	nodes map[domain.InternedString]ports.Node
	// requested are the units of the nodes named on the command line.
	requested map[domain.InternedString]bool
	// selected are the requested units and every unit producing one of their inputs.
	selected map[domain.InternedString]bool
}

// unitName identifies the i-th tech configured on a node.
func unitName(nodePath string, i int) domain.InternedString {
	return domain.NewInternedString(fmt.Sprintf("%s#%d", nodePath, i))
}

// plan configures one tech per options set of every node and links the resulting units.
func (a *App) plan(project *domain.Project, graph ports.Graph, nodes []string) (*plan, error) {
	requested, err := selectNodes(project, nodes)
	if err != nil {
		return nil, err
	}

	p := &plan{
		graph:     domain.NewGraph(),
		techs:     make(map[domain.InternedString]ports.Tech),
		nodes:     make(map[domain.InternedString]ports.Node),
		requested: make(map[domain.InternedString]bool),
		selected:  make(map[domain.InternedString]bool),
	}

	for _, nc := range project.Nodes {
		node, err := graph.Node(nc.Path)
		if err != nil {
			return nil, err
		}
		nodeName := domain.NewInternedString(nc.Path)
		p.nodes[nodeName] = node

		for i, opts := range nc.Techs {
			unit, t, err := a.configureUnit(node, unitName(nc.Path, i), nodeName, opts)
			if err != nil {
				return nil, err
			}
			if err := p.graph.AddUnit(unit); err != nil {
				return nil, err
			}
			p.units = append(p.units, *unit)
			p.techs[unit.Name] = t
			if requested[nc.Path] {
				p.requested[unit.Name] = true
			}
		}
	}

	p.graph.Link()
	if err := p.graph.Validate(); err != nil {
		return nil, err
	}

	linked := make(map[domain.InternedString]domain.Unit, p.graph.UnitCount())
	for unit := range p.graph.Walk() {
		linked[unit.Name] = unit
	}
	var visit func(name domain.InternedString)
	visit = func(name domain.InternedString) {
		if p.selected[name] {
			return
		}
		p.selected[name] = true
		for _, dep := range linked[name].Dependencies {
			visit(dep)
		}
	}
	for name := range p.requested {
		visit(name)
	}

	return p, nil
}

func (a *App) configureUnit(
	node ports.Node,
	name, nodeName domain.InternedString,
	opts domain.TechOptions,
) (*domain.Unit, ports.Tech, error) {
	t := a.techs.New()
	if err := t.Configure(node, opts); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to configure unit"), "unit", name.String())
	}

	sources, err := t.Sources()
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to list sources"), "unit", name.String())
	}
	targets, err := t.Targets()
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to list targets"), "unit", name.String())
	}

	unit := &domain.Unit{
		Name:    name,
		Node:    nodeName,
		Inputs:  make([]domain.InternedString, 0, len(sources)),
		Outputs: make([]domain.InternedString, 0, len(targets)),
	}
	for _, src := range sources {
		unit.Inputs = append(unit.Inputs, domain.NewInternedString(src.Path))
	}
	for _, target := range targets {
		unit.Outputs = append(unit.Outputs, domain.NewInternedString(target.Path))
	}
	return unit, t, nil
}

// selectNodes returns the set of node paths to build. No names select every node.
func selectNodes(project *domain.Project, names []string) (map[string]bool, error) {
	selected := make(map[string]bool, len(project.Nodes))
	if len(names) == 0 {
		for _, nc := range project.Nodes {
			selected[nc.Path] = true
		}
		return selected, nil
	}

	for _, name := range names {
		cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
		if _, ok := project.Node(cleaned); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrNodeNotFound, "unknown node"), "node", name)
		}
		selected[cleaned] = true
	}
	return selected, nil
}
