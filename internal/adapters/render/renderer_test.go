package render_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/adapters/render"
	"go.trai.ch/i18nhtml/internal/core/domain"
)

type fixture struct {
	dir      string
	template string
	all      string
	one      string
}

func newFixture(t *testing.T, tmpl, all, one string) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:      dir,
		template: filepath.Join(dir, "index.tmpl"),
		all:      filepath.Join(dir, "index.lang.all.hcl"),
		one:      filepath.Join(dir, "index.lang.one.hcl"),
	}
	require.NoError(t, os.WriteFile(f.template, []byte(tmpl), 0o600))
	require.NoError(t, os.WriteFile(f.all, []byte(all), 0o600))
	require.NoError(t, os.WriteFile(f.one, []byte(one), 0o600))
	return f
}

func (f *fixture) request(t *testing.T, locale string, doc any) *domain.RenderRequest {
	t.Helper()
	loc, err := domain.ResolveLocale(locale, nil)
	require.NoError(t, err)
	return &domain.RenderRequest{
		Target:        domain.BuildTarget{Name: domain.NewInternedString("index." + locale + ".html"), Path: filepath.Join(f.dir, "index."+locale+".html")},
		TemplatePath:  f.template,
		LocaleAllPath: f.all,
		LocalePath:    f.one,
		Locale:        loc,
		Document:      &domain.Document{Source: "index.data.hcl", Value: doc},
	}
}

func newRenderer() *render.Renderer {
	return render.NewRenderer(hcldata.NewEvaluator())
}

func TestRenderer_Greeting(t *testing.T) {
	f := newFixture(t,
		`{{define "greeting"}}{{i18n "hello"}}{{end}}`,
		`{en: {hello: "Hello"}}`,
		`{en: {hello: "Hello"}}`,
	)

	out, err := newRenderer().Render(context.Background(), f.request(t, "en", map[string]any{"block": "greeting"}))
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestRenderer_EntryPoints(t *testing.T) {
	tmpl := `root:{{.title}}` +
		`{{define "item"}}<li>{{.text}}</li>{{end}}` +
		`{{define "page"}}<ul>{{apply .content}}</ul>{{end}}`

	tests := []struct {
		name string
		doc  any
		want string
	}{
		{
			name: "block with nested content",
			doc: map[string]any{"block": "page", "content": []any{
				map[string]any{"block": "item", "text": "a"},
				"<b>",
				map[string]any{"content": map[string]any{"block": "item", "text": "b"}},
			}},
			want: "<ul><li>a</li>&lt;b&gt;<li>b</li></ul>",
		},
		{
			name: "list concatenates elements",
			doc: []any{
				map[string]any{"block": "item", "text": "x"},
				map[string]any{"block": "item", "text": "y"},
			},
			want: "<li>x</li><li>y</li>",
		},
		{
			name: "object without block executes root",
			doc:  map[string]any{"title": "<home>"},
			want: "root:&lt;home&gt;",
		},
	}

	f := newFixture(t, tmpl, `{}`, `{}`)
	r := newRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Render(context.Background(), f.request(t, "en", tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderer_Phrases(t *testing.T) {
	tmpl := `{{define "p"}}{{i18n "hello"}}|{{i18n "nav" "home"}}|{{i18n "missing"}}|{{i18n "nav" "absent"}}{{end}}`

	t.Run("single-locale section overlays all-locales section", func(t *testing.T) {
		f := newFixture(t, tmpl,
			`{en: {hello: "Hello", nav: {home: "Home"}}}`,
			`{en: {hello: "Hi"}}`,
		)
		out, err := newRenderer().Render(context.Background(), f.request(t, "en", map[string]any{"block": "p"}))
		require.NoError(t, err)
		assert.Equal(t, "Hi|Home|missing|absent", out)
	})

	t.Run("single-locale catalog without locale section overlays top level", func(t *testing.T) {
		f := newFixture(t, tmpl,
			`{ru: {hello: "Привет"}}`,
			`{nav: {home: "Главная"}}`,
		)
		out, err := newRenderer().Render(context.Background(), f.request(t, "ru", map[string]any{"block": "p"}))
		require.NoError(t, err)
		assert.Equal(t, "Привет|Главная|missing|absent", out)
	})
}

func TestRenderer_LocaleFunctions(t *testing.T) {
	f := newFixture(t,
		`{{define "p"}}{{lang}} {{tld}} {{number .n}} {{with attr . "missing"}}x{{else}}none{{end}} {{attr . "kind"}}{{end}}`,
		`{}`, `{}`,
	)
	r := newRenderer()

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en com 1,234,567 none page"},
		{"en-GB", "en-GB co.uk 1,234,567 none page"},
		{"de", "de com 1.234.567 none page"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			out, err := r.Render(context.Background(), f.request(t, tt.locale, map[string]any{"block": "p", "kind": "page", "n": int64(1234567)}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderer_ConcurrentLocalesAreIsolated(t *testing.T) {
	f := newFixture(t,
		`{{define "p"}}{{lang}}:{{i18n "hello"}}{{end}}`,
		`{en: {hello: "Hello"}, ru: {hello: "Привет"}, be: {hello: "Прывітанне"}}`,
		`{}`,
	)
	r := newRenderer()
	want := map[string]string{"en": "en:Hello", "ru": "ru:Привет", "be": "be:Прывітанне"}

	var wg sync.WaitGroup
	errs := make(chan error, 30)
	for i := range 30 {
		locale := []string{"en", "ru", "be"}[i%3]
		req := f.request(t, locale, map[string]any{"block": "p"})
		wg.Go(func() {
			out, err := r.Render(context.Background(), req)
			if err != nil {
				errs <- err
				return
			}
			if out != want[locale] {
				errs <- fmt.Errorf("locale %s rendered %q", locale, out)
			}
		})
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestRenderer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		all     string
		doc     any
		wantErr error
	}{
		{"unknown block", `{{define "a"}}a{{end}}`, `{}`, map[string]any{"block": "b"}, domain.ErrRender},
		{"template syntax", `{{define "a"}}{{end`, `{}`, map[string]any{"block": "a"}, domain.ErrRender},
		{"execution failure", `{{define "a"}}{{index .items 5}}{{end}}`, `{}`, map[string]any{"block": "a", "items": []any{}}, domain.ErrRender},
		{"catalog syntax", `{{define "a"}}a{{end}}`, `{en: `, map[string]any{"block": "a"}, domain.ErrCatalogSyntax},
		{"unsupported number", `{{define "a"}}{{number .x}}{{end}}`, `{}`, map[string]any{"block": "a", "x": "text"}, domain.ErrRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.tmpl, tt.all, `{}`)
			_, err := newRenderer().Render(context.Background(), f.request(t, "en", tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("missing template file", func(t *testing.T) {
		f := newFixture(t, ``, `{}`, `{}`)
		require.NoError(t, os.Remove(f.template))
		_, err := newRenderer().Render(context.Background(), f.request(t, "en", map[string]any{"block": "a"}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIO))
	})

	t.Run("no locale", func(t *testing.T) {
		f := newFixture(t, `{{define "a"}}a{{end}}`, `{}`, `{}`)
		req := f.request(t, "en", map[string]any{"block": "a"})
		req.Locale = domain.LocaleContext{}
		_, err := newRenderer().Render(context.Background(), req)
		require.ErrorIs(t, err, domain.ErrRender)
		assert.Contains(t, err.Error(), "no locale selected")
	})

	t.Run("canceled context", func(t *testing.T) {
		f := newFixture(t, `{{define "a"}}a{{end}}`, `{}`, `{}`)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newRenderer().Render(ctx, f.request(t, "en", map[string]any{"block": "a"}))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
