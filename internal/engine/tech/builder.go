// Package tech implements the localized HTML build tech.
//
// A Builder is configured on one node and produces one HTML file per selected
// locale. Its build is a linear pipeline: require sources, compute the stale
// set, evaluate the data artifact once, render the stale targets and report
// every target back to the graph.
package tech

import (
	"errors"
	"slices"
	"strings"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

// Name is the identifier of the tech.
const Name = "html-i18n"

var _ ports.Tech = (*Builder)(nil)

// targetPlan holds one output target with the sources it is rendered from.
type targetPlan struct {
	target  domain.BuildTarget
	locale  domain.LocaleContext
	sources []domain.SourceReference
}

func (p *targetPlan) source(role domain.SourceRole) domain.SourceReference {
	for _, src := range p.sources {
		if src.Role == role {
			return src
		}
	}
	return domain.SourceReference{}
}

// Builder implements ports.Tech for localized HTML pages.
type Builder struct {
	evaluator ports.Evaluator
	renderer  ports.Renderer
	logger    ports.Logger
	recorder  ports.Recorder
	telemetry ports.Telemetry

	node     ports.Node
	opts     domain.TechOptions
	plans    []*targetPlan
	vertices []ports.Vertex
}

// NewBuilder creates an unconfigured Builder.
func NewBuilder(
	evaluator ports.Evaluator,
	renderer ports.Renderer,
	logger ports.Logger,
	recorder ports.Recorder,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		evaluator: evaluator,
		renderer:  renderer,
		logger:    logger,
		recorder:  recorder,
		telemetry: telemetry,
	}
}

// Name returns the tech identifier.
func (b *Builder) Name() string {
	return Name
}

// Configure binds the builder to node and resolves the paths of every source and of the output target.
func (b *Builder) Configure(node ports.Node, opts domain.TechOptions) error {
	if node == nil {
		return errors.Join(domain.ErrConfiguration, zerr.New("tech configured without a node"))
	}
	if b.node != nil {
		return zerr.With(errors.Join(domain.ErrConfiguration, zerr.New("tech is already configured")), "node", b.node.Path())
	}

	locale, err := domain.ResolveLocale(opts.Lang, node.Languages())
	if err != nil {
		return zerr.With(errors.Join(domain.ErrConfiguration, err), "node", node.Path())
	}

	plan, err := resolvePlan(node, opts, locale)
	if err != nil {
		return err
	}

	b.node = node
	b.opts = opts
	b.plans = []*targetPlan{plan}
	return nil
}

// addPlan adds one more output target for lang using the configured options.
// Configured builders produce one target per instance; only tests add more.
func (b *Builder) addPlan(lang string) error {
	if b.node == nil {
		return domain.ErrNotConfigured
	}
	locale, err := domain.ResolveLocale(lang, b.node.Languages())
	if err != nil {
		return errors.Join(domain.ErrConfiguration, err)
	}
	plan, err := resolvePlan(b.node, b.opts, locale)
	if err != nil {
		return err
	}
	if data := plan.source(domain.RoleData).Path; data != b.plans[0].source(domain.RoleData).Path {
		err := errors.Join(domain.ErrConfiguration, zerr.New("targets of one tech share the data artifact"))
		return zerr.With(err, "path", data)
	}
	for _, p := range b.plans {
		if p.target.Path == plan.target.Path {
			err := errors.Join(domain.ErrConfiguration, zerr.New("target is produced twice"))
			return zerr.With(err, "target", plan.target.Path)
		}
	}
	b.plans = append(b.plans, plan)
	return nil
}

// resolvePlan resolves every target name of opts for locale.
// Empty names fall back to the defaults; the node mask and the locale mask are substituted in both.
func resolvePlan(node ports.Node, opts domain.TechOptions, locale domain.LocaleContext) (*targetPlan, error) {
	resolve := func(configured, fallback string) (string, string) {
		name := strings.TrimSpace(configured)
		if name == "" {
			name = fallback
		}
		name = strings.ReplaceAll(node.UnmaskTargetName(name), domain.LangMask, locale.ID)
		return name, node.ResolvePath(name)
	}

	names := []struct {
		role       domain.SourceRole
		configured string
		fallback   string
	}{
		{domain.RoleTemplate, opts.TemplateTarget, domain.DefaultTemplateTarget},
		{domain.RoleData, opts.DataTarget, domain.DefaultDataTarget},
		{domain.RoleLocaleAll, opts.LangAllTarget, domain.DefaultLangAllTarget},
		{domain.RoleLocaleOne, opts.LangTarget, domain.DefaultLangTarget},
	}

	plan := &targetPlan{locale: locale, sources: make([]domain.SourceReference, 0, len(names))}
	for _, n := range names {
		name, path := resolve(n.configured, n.fallback)
		if path == "" {
			return nil, configurationError(node, n.role, name)
		}
		plan.sources = append(plan.sources, domain.SourceReference{Role: n.role, Name: name, Path: path})
	}

	destName, destPath := resolve(opts.DestTarget, domain.DefaultDestTarget)
	if destPath == "" {
		return nil, configurationError(node, domain.RoleDestination, destName)
	}
	for _, src := range plan.sources {
		if src.Path == destPath {
			err := errors.Join(domain.ErrConfiguration, zerr.New("destination overwrites a source"))
			err = zerr.With(err, "role", string(src.Role))
			return nil, zerr.With(err, "path", destPath)
		}
	}
	plan.target = domain.BuildTarget{Name: domain.NewInternedString(destName), Path: destPath}
	return plan, nil
}

func configurationError(node ports.Node, role domain.SourceRole, name string) error {
	err := errors.Join(domain.ErrConfiguration, zerr.New("target name does not resolve to a path"))
	err = zerr.With(err, "role", string(role))
	err = zerr.With(err, "name", name)
	return zerr.With(err, "node", node.Path())
}

// Sources returns the resolved sources of the first target in role order.
func (b *Builder) Sources() ([]domain.SourceReference, error) {
	if b.node == nil {
		return nil, domain.ErrNotConfigured
	}
	return slices.Clone(b.plans[0].sources), nil
}

// Targets returns the output targets.
func (b *Builder) Targets() ([]domain.BuildTarget, error) {
	if b.node == nil {
		return nil, domain.ErrNotConfigured
	}
	targets := make([]domain.BuildTarget, 0, len(b.plans))
	for _, p := range b.plans {
		targets = append(targets, p.target)
	}
	return targets, nil
}

// IsRebuildRequired reports whether any of the five tracked files of target
// differs from the fingerprint recorded under the target's cache.
// It never mutates the cache.
func (b *Builder) IsRebuildRequired(target domain.BuildTarget) (bool, error) {
	if b.node == nil {
		return false, domain.ErrNotConfigured
	}
	plan, err := b.plan(target.Path)
	if err != nil {
		return false, err
	}
	return b.isStale(plan)
}

func (b *Builder) plan(path string) (*targetPlan, error) {
	for _, p := range b.plans {
		if p.target.Path == path {
			return p, nil
		}
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "target is not produced by this tech"), "target", path)
}

func (b *Builder) isStale(plan *targetPlan) (bool, error) {
	cache := b.node.Cache(plan.target.Path)
	for _, src := range plan.sources {
		stale, err := cache.NeedRebuildFile(src.Role.CacheLabel(), src.Path)
		if err != nil {
			return false, zerr.With(err, "target", plan.target.Path)
		}
		if stale {
			return true, nil
		}
	}
	stale, err := cache.NeedRebuildFile(domain.RoleDestination.CacheLabel(), plan.target.Path)
	if err != nil {
		return false, zerr.With(err, "target", plan.target.Path)
	}
	return stale, nil
}

// sourcePaths returns the distinct source paths of every target.
func (b *Builder) sourcePaths() []string {
	var paths []string
	for _, p := range b.plans {
		for _, src := range p.sources {
			if !slices.Contains(paths, src.Path) {
				paths = append(paths, src.Path)
			}
		}
	}
	return paths
}
