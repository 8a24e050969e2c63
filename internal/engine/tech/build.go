package tech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Build produces every stale target and resolves every fresh one.
//
// Configuration and upstream errors are returned before any target is examined.
// A data artifact that fails to evaluate fails every stale target and nothing is written.
// A target that fails to render or write fails alone; the returned error then
// matches domain.ErrPartialFailure.
func (b *Builder) Build(ctx context.Context) (*domain.BuildReport, error) {
	if b.node == nil {
		return nil, domain.ErrNotConfigured
	}

	for _, p := range b.plans {
		if err := b.node.MarkValid(p.target.Path); err != nil {
			return nil, errors.Join(domain.ErrConfiguration, err)
		}
	}

	report := &domain.BuildReport{
		InvocationID: uuid.NewString(),
		Node:         b.node.Path(),
		Results:      make([]domain.TargetResult, len(b.plans)),
	}
	b.vertices = make([]ports.Vertex, len(b.plans))
	for i, p := range b.plans {
		report.Results[i] = domain.TargetResult{Target: p.target, Status: domain.TargetStatusPending}
		b.vertices[i] = b.telemetry.Record(ctx, p.target.Path)
	}

	if err := b.node.RequireSources(ctx, b.sourcePaths()); err != nil {
		b.failAll(report, allIndexes(len(b.plans)), err)
		return report, err
	}

	started := time.Now()
	stale := b.checkStaleness(report, started)
	if len(stale) == 0 {
		return report, report.Err()
	}

	doc, err := b.evaluate()
	if err != nil {
		b.failAll(report, stale, err)
		return report, err
	}

	b.renderAll(ctx, report, stale, doc)
	return report, report.Err()
}

// checkStaleness resolves every fresh target and returns the indexes of the stale ones.
func (b *Builder) checkStaleness(report *domain.BuildReport, started time.Time) []int {
	var stale []int
	for i, p := range b.plans {
		rebuild, err := b.isStale(p)
		switch {
		case err != nil:
			b.fail(report, i, err, time.Since(started))
		case rebuild:
			stale = append(stale, i)
		default:
			if err := b.node.MarkResolved(p.target.Path); err != nil {
				b.fail(report, i, err, time.Since(started))
				continue
			}
			b.finish(report, i, domain.TargetStatusSkipped, 0, time.Since(started))
			b.logger.Debug(fmt.Sprintf("%s is up to date", p.target))
		}
	}
	return stale
}

// evaluate reads and evaluates the shared data artifact.
func (b *Builder) evaluate() (*domain.Document, error) {
	path := b.plans[0].source(domain.RoleData).Path
	src, err := os.ReadFile(path) //nolint:gosec // Path is resolved from the node directory
	if err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to read data artifact"), "path", path))
	}

	b.recorder.DataEvaluated(b.node.Path())
	value, err := b.evaluator.Evaluate(src, path)
	if err != nil {
		return nil, errors.Join(domain.ErrDataSyntax, err)
	}
	return &domain.Document{Source: path, Value: value}, nil
}

// renderAll renders the stale targets concurrently. Every render gets its own
// locale, so renders share nothing but the read-only document.
func (b *Builder) renderAll(ctx context.Context, report *domain.BuildReport, stale []int, doc *domain.Document) {
	var g errgroup.Group
	g.SetLimit(max(b.node.Parallelism(), 1))

	for _, i := range stale {
		g.Go(func() error {
			started := time.Now()
			written, err := b.produce(ctx, b.plans[i], doc)
			if err != nil {
				b.fail(report, i, err, time.Since(started))
				return nil
			}
			b.finish(report, i, domain.TargetStatusBuilt, written, time.Since(started))
			b.logger.Info(fmt.Sprintf("built %s", b.plans[i].target))
			return nil
		})
	}
	_ = g.Wait()
}

// produce renders one target, writes it and records the fingerprints of its five tracked files.
func (b *Builder) produce(ctx context.Context, plan *targetPlan, doc *domain.Document) (int, error) {
	html, err := b.renderer.Render(ctx, &domain.RenderRequest{
		Target:        plan.target,
		TemplatePath:  plan.source(domain.RoleTemplate).Path,
		LocaleAllPath: plan.source(domain.RoleLocaleAll).Path,
		LocalePath:    plan.source(domain.RoleLocaleOne).Path,
		Locale:        plan.locale,
		Document:      doc,
	})
	if err != nil {
		return 0, err
	}

	if err := writeTarget(plan.target.Path, html); err != nil {
		return 0, err
	}

	cache := b.node.Cache(plan.target.Path)
	for _, src := range plan.sources {
		if err := cache.CacheFileInfo(src.Role.CacheLabel(), src.Path); err != nil {
			return 0, errors.Join(domain.ErrIO, err)
		}
	}
	if err := cache.CacheFileInfo(domain.RoleDestination.CacheLabel(), plan.target.Path); err != nil {
		return 0, errors.Join(domain.ErrIO, err)
	}
	if err := cache.Save(); err != nil {
		return 0, errors.Join(domain.ErrIO, err)
	}

	if err := b.node.MarkResolved(plan.target.Path); err != nil {
		return 0, err
	}
	return len(html), nil
}

func writeTarget(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", path))
	}
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to write target"), "path", path))
	}
	return nil
}

// fail records the failure of one target and rejects it so dependents stop waiting.
func (b *Builder) fail(report *domain.BuildReport, i int, err error, d time.Duration) {
	target := b.plans[i].target
	if rejectErr := b.node.RejectTarget(target.Path, err); rejectErr != nil {
		b.logger.Debug(fmt.Sprintf("%s could not be rejected: %v", target, rejectErr))
	}
	report.Results[i].Err = err
	b.finish(report, i, domain.TargetStatusFailed, 0, d)
	b.logger.Warn(fmt.Sprintf("%s failed", target))
}

func (b *Builder) failAll(report *domain.BuildReport, indexes []int, err error) {
	for _, i := range indexes {
		b.fail(report, i, err, 0)
	}
}

// finish settles the report entry and the vertex of one target. Each goroutine owns its own entry.
func (b *Builder) finish(report *domain.BuildReport, i int, status domain.TargetStatus, written int, d time.Duration) {
	res := &report.Results[i]
	res.Status = status
	res.Bytes = written
	res.Duration = d
	b.recorder.TargetFinished(b.node.Path(), status, d)

	v := b.vertices[i]
	switch status {
	case domain.TargetStatusSkipped:
		v.Cached()
	case domain.TargetStatusBuilt:
		v.Log(fmt.Sprintf("wrote %d bytes", written))
	}
	v.Complete(res.Err)
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
