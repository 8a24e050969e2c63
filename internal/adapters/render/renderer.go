// Package render renders localized documents through html/template.
package render

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// maxDepth bounds nested block rendering.
const maxDepth = 64

// Renderer implements ports.Renderer. It keeps no state between renders:
// the template and both catalogs are read from disk on every call.
type Renderer struct {
	evaluator ports.Evaluator
}

// NewRenderer creates a new Renderer evaluating catalogs with evaluator.
func NewRenderer(evaluator ports.Evaluator) *Renderer {
	return &Renderer{evaluator: evaluator}
}

// Render renders req.Document for req.Locale.
func (r *Renderer) Render(ctx context.Context, req *domain.RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Document == nil {
		return "", errors.Join(domain.ErrRender, zerr.With(zerr.New("no document to render"), "target", req.Target.Path))
	}
	if req.Locale.IsZero() {
		return "", errors.Join(domain.ErrRender, zerr.With(zerr.New("no locale selected"), "target", req.Target.Path))
	}

	all, err := r.loadCatalog(req.LocaleAllPath)
	if err != nil {
		return "", err
	}
	one, err := r.loadCatalog(req.LocalePath)
	if err != nil {
		return "", err
	}

	src, err := os.ReadFile(req.TemplatePath) //nolint:gosec // Path is resolved from the node directory
	if err != nil {
		return "", errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to read template"), "path", req.TemplatePath))
	}

	rc := &renderContext{
		locale:  req.Locale,
		phrases: mergePhrases(all, one, req.Locale.ID),
	}
	rc.tmpl, err = template.New(filepath.Base(req.TemplatePath)).Funcs(rc.funcs()).Parse(string(src))
	if err != nil {
		return "", renderError(err, req.TemplatePath)
	}

	out, err := rc.renderDocument(req.Document.Value)
	if err != nil {
		return "", renderError(err, req.TemplatePath)
	}
	return out, nil
}

func (r *Renderer) loadCatalog(path string) (any, error) {
	src, err := os.ReadFile(path) //nolint:gosec // Path is resolved from the node directory
	if err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, "failed to read locale catalog"), "path", path))
	}
	val, err := r.evaluator.Evaluate(src, path)
	if err != nil {
		return nil, errors.Join(domain.ErrCatalogSyntax, err)
	}
	return val, nil
}

func renderError(err error, templatePath string) error {
	return errors.Join(domain.ErrRender, zerr.With(zerr.Wrap(err, "failed to render template"), "template", templatePath))
}

// renderContext holds the state of exactly one render.
type renderContext struct {
	tmpl    *template.Template
	locale  domain.LocaleContext
	phrases map[string]any
	depth   int
}

// renderDocument executes the entry point chosen by the document shape.
// Objects naming a block execute that block, lists render every element and
// anything else executes the root template.
func (rc *renderContext) renderDocument(doc any) (string, error) {
	switch v := doc.(type) {
	case map[string]any:
		if _, ok := v["block"].(string); ok {
			out, err := rc.apply(v)
			return string(out), err
		}
	case []any:
		out, err := rc.apply(v)
		return string(out), err
	}

	var b strings.Builder
	if err := rc.tmpl.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// apply renders a document value. Blocks render through the template of the
// same name, lists concatenate, objects without a block render their content
// and scalars render as escaped text.
func (rc *renderContext) apply(value any) (template.HTML, error) {
	rc.depth++
	defer func() { rc.depth-- }()
	if rc.depth > maxDepth {
		return "", zerr.With(zerr.New("document nesting too deep"), "limit", maxDepth)
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case []any:
		var b strings.Builder
		for _, item := range v {
			out, err := rc.apply(item)
			if err != nil {
				return "", err
			}
			b.WriteString(string(out))
		}
		return template.HTML(b.String()), nil //nolint:gosec // Built from escaped template output
	case map[string]any:
		block, ok := v["block"].(string)
		if !ok {
			return rc.apply(v["content"])
		}
		if rc.tmpl.Lookup(block) == nil {
			return "", zerr.With(zerr.New("no template defined for block"), "block", block)
		}
		var b strings.Builder
		if err := rc.tmpl.ExecuteTemplate(&b, block, v); err != nil {
			return "", err
		}
		return template.HTML(b.String()), nil //nolint:gosec // Output of html/template is already escaped
	default:
		return template.HTML(template.HTMLEscapeString(fmt.Sprint(v))), nil //nolint:gosec // Escaped above
	}
}
