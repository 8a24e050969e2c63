// Package app implements the application layer for i18nhtml.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	graphs       ports.GraphFactory
	techs        ports.TechFactory
	store        ports.FingerprintStore
	recorder     ports.Recorder
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	graphs ports.GraphFactory,
	techs ports.TechFactory,
	store ports.FingerprintStore,
	recorder ports.Recorder,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		graphs:       graphs,
		techs:        techs,
		store:        store,
		recorder:     recorder,
		logger:       log,
	}
}

// WithWorkDir sets the directory the project file is searched from.
// By default the process working directory is used.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Force rebuilds every target regardless of recorded fingerprints.
	Force bool
	// JSON switches the log output to JSON.
	JSON bool
	// Verbose enables debug logs.
	Verbose bool
	// MetricsTextfile, when set, receives the build metrics in the text exposition format.
	MetricsTextfile string
}

// logModeSetter is implemented by loggers whose output format can be switched.
type logModeSetter interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// textfileWriter is implemented by recorders that can export their metrics to a file.
type textfileWriter interface {
	WriteTextfile(path string) error
}

// SetLogMode switches the logger to JSON output or debug verbosity when it supports it.
func (a *App) SetLogMode(json, verbose bool) {
	if l, ok := a.logger.(logModeSetter); ok {
		l.SetJSON(json)
		l.SetVerbose(verbose)
	}
}

// Run builds the units configured on nodes and every unit they depend on.
// With no nodes, every configured unit is built.
func (a *App) Run(ctx context.Context, nodes []string, opts RunOptions) error {
	a.SetLogMode(opts.JSON, opts.Verbose)

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	graph, err := a.graphs.New(project, ports.GraphOptions{Force: opts.Force})
	if err != nil {
		return zerr.Wrap(err, "failed to create build graph")
	}

	p, err := a.plan(project, graph, nodes)
	if err != nil {
		return err
	}

	for unit := range p.graph.Walk() {
		if !p.selected[unit.Name] {
			continue
		}
		for _, out := range unit.Outputs {
			if err := graph.Declare(out.String(), unit.Name.String()); err != nil {
				return err
			}
		}
	}

	summary, buildErr := a.execute(ctx, project, p)
	a.logger.Info(summary.String())

	if opts.MetricsTextfile != "" {
		if w, ok := a.recorder.(textfileWriter); ok {
			if err := w.WriteTextfile(opts.MetricsTextfile); err != nil {
				buildErr = errors.Join(buildErr, err)
			}
		}
	}

	if buildErr != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, buildErr)
	}
	return nil
}

// Summary counts target outcomes of one run.
type Summary struct {
	Built   int
	Skipped int
	Failed  int
}

// String renders the summary as one log line.
func (s Summary) String() string {
	return fmt.Sprintf("%d built, %d up to date, %d failed", s.Built, s.Skipped, s.Failed)
}

func (s *Summary) add(report *domain.BuildReport) {
	for _, res := range report.Results {
		if !res.Status.IsTerminal() {
			s.Failed++
			continue
		}
		switch res.Status {
		case domain.TargetStatusBuilt:
			s.Built++
		case domain.TargetStatusSkipped:
			s.Skipped++
		case domain.TargetStatusFailed:
			s.Failed++
		}
	}
}

// execute builds the selected units concurrently. Units are started in topological
// order, so every producer holds a slot or has finished before a consumer waits on it.
func (a *App) execute(ctx context.Context, project *domain.Project, p *plan) (Summary, error) {
	var (
		mu      sync.Mutex
		summary Summary
		errs    error
	)

	var g errgroup.Group
	g.SetLimit(max(project.Parallelism, 1))

	for unit := range p.graph.Walk() {
		if !p.selected[unit.Name] {
			continue
		}
		t := p.techs[unit.Name]
		node := p.nodes[unit.Node]
		g.Go(func() error {
			report, err := t.Build(ctx)
			if err != nil {
				rejectLeftovers(node, unit, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if report != nil {
				summary.add(report)
			}
			if err != nil {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "unit failed"), "unit", unit.Name.String()))
			}
			return nil
		})
	}
	_ = g.Wait()

	return summary, errs
}

// rejectLeftovers settles the outputs a failed build left open so dependents stop waiting.
func rejectLeftovers(node ports.Node, unit domain.Unit, cause error) {
	for _, out := range unit.Outputs {
		_ = node.RejectTarget(out.String(), cause)
	}
}

// UnitInfo describes one configured tech instance.
type UnitInfo struct {
	Name    string
	Node    string
	Tech    string
	Sources []domain.SourceReference
	Targets []domain.BuildTarget
	Stale   []bool
}

// Targets lists the units configured on nodes with their resolved sources and targets.
// With no nodes, every configured unit is listed.
func (a *App) Targets(_ context.Context, nodes []string) ([]UnitInfo, error) {
	project, err := a.loadProject()
	if err != nil {
		return nil, err
	}

	graph, err := a.graphs.New(project, ports.GraphOptions{})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create build graph")
	}

	p, err := a.plan(project, graph, nodes)
	if err != nil {
		return nil, err
	}

	var infos []UnitInfo
	for _, unit := range p.units {
		if !p.requested[unit.Name] {
			continue
		}
		t := p.techs[unit.Name]
		info := UnitInfo{Name: unit.Name.String(), Node: unit.Node.String(), Tech: t.Name()}
		if info.Sources, err = t.Sources(); err != nil {
			return nil, err
		}
		if info.Targets, err = t.Targets(); err != nil {
			return nil, err
		}
		for _, target := range info.Targets {
			stale, err := t.IsRebuildRequired(target)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to check staleness"), "unit", unit.Name.String())
			}
			info.Stale = append(info.Stale, stale)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Clean removes the fingerprint cache of the project.
func (a *App) Clean(_ context.Context) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing fingerprint cache %s...", project.CacheDir))
	if err := a.store.Clear(project.CacheDir); err != nil {
		return errors.Join(domain.ErrFailedToCleanCache, err)
	}
	a.logger.Info("removed fingerprint cache")
	return nil
}

func (a *App) loadProject() (*domain.Project, error) {
	dir := a.workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		dir = cwd
	}

	project, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}
