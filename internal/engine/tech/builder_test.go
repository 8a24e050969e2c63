package tech_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/adapters/metrics"
	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports/mocks"
	"go.trai.ch/i18nhtml/internal/engine/tech"
	"go.uber.org/mock/gomock"
)

func newUnconfigured(t *testing.T) *tech.Builder {
	t.Helper()
	ctrl := gomock.NewController(t)
	return tech.NewBuilder(hcldata.NewEvaluator(), mocks.NewMockRenderer(ctrl), quietLogger(ctrl), metrics.NoopRecorder{}, mocks.NewMockTelemetry(ctrl))
}

func TestBuilder_Configure_Defaults(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{})

	targets, err := r.builder.Targets()
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "index.en.html", targets[0].String())
	assert.Equal(t, s.path("index.en.html"), targets[0].Path)

	sources, err := r.builder.Sources()
	require.NoError(t, err)
	assert.Equal(t, []domain.SourceReference{
		{Role: domain.RoleTemplate, Name: "index.tmpl", Path: s.path("index.tmpl")},
		{Role: domain.RoleData, Name: "index.data.hcl", Path: s.path("index.data.hcl")},
		{Role: domain.RoleLocaleAll, Name: "index.lang.all.hcl", Path: s.path("index.lang.all.hcl")},
		{Role: domain.RoleLocaleOne, Name: "index.lang.en.hcl", Path: s.path("index.lang.en.hcl")},
	}, sources)

	assert.Equal(t, tech.Name, r.builder.Name())
}

func TestBuilder_Configure_Overrides(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{opts: domain.TechOptions{
		TemplateTarget: "../shared/layout.tmpl",
		DataTarget:     "content.hcl",
		LangAllTarget:  "i18n/?.all.hcl",
		LangTarget:     "i18n/{lang}.hcl",
		DestTarget:     "out/?.{lang}.html",
		Lang:           "ru",
	}})

	targets, err := r.builder.Targets()
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "out/index.ru.html", targets[0].String())
	assert.Equal(t, s.path(filepath.Join("out", "index.ru.html")), targets[0].Path)

	sources, err := r.builder.Sources()
	require.NoError(t, err)
	paths := make(map[domain.SourceRole]string, len(sources))
	for _, src := range sources {
		paths[src.Role] = src.Path
	}
	assert.Equal(t, filepath.Join(s.root, "pages", "shared", "layout.tmpl"), paths[domain.RoleTemplate])
	assert.Equal(t, s.path("content.hcl"), paths[domain.RoleData])
	assert.Equal(t, s.path(filepath.Join("i18n", "index.all.hcl")), paths[domain.RoleLocaleAll])
	assert.Equal(t, s.path(filepath.Join("i18n", "ru.hcl")), paths[domain.RoleLocaleOne])
}

func TestBuilder_Configure_Idempotent(t *testing.T) {
	s := newSite(t)
	first := s.newRun(t, runConfig{})
	second := s.newRun(t, runConfig{})

	a, err := first.builder.Targets()
	require.NoError(t, err)
	b, err := second.builder.Targets()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuilder_NotConfigured(t *testing.T) {
	b := newUnconfigured(t)

	_, err := b.Targets()
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = b.Sources()
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = b.IsRebuildRequired(domain.BuildTarget{Path: "/site/index.en.html"})
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = b.Build(t.Context())
	require.ErrorIs(t, err, domain.ErrNotConfigured)
	require.ErrorIs(t, b.AddLocaleTarget("ru"), domain.ErrNotConfigured)
}

func TestBuilder_Configure_Errors(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		err := newUnconfigured(t).Configure(nil, domain.TechOptions{})
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("no locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		node := mocks.NewMockNode(ctrl)
		node.EXPECT().Languages().Return(nil)
		node.EXPECT().Path().Return(nodePath).AnyTimes()

		err := newUnconfigured(t).Configure(node, domain.TechOptions{})
		require.ErrorIs(t, err, domain.ErrConfiguration)
		require.ErrorIs(t, err, domain.ErrNoLocale)
	})

	t.Run("invalid locale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		node := mocks.NewMockNode(ctrl)
		node.EXPECT().Languages().Return([]string{"en"})
		node.EXPECT().Path().Return(nodePath).AnyTimes()

		err := newUnconfigured(t).Configure(node, domain.TechOptions{Lang: "not a locale"})
		require.ErrorIs(t, err, domain.ErrConfiguration)
		require.ErrorIs(t, err, domain.ErrInvalidLocale)
	})

	t.Run("unresolvable name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		node := mocks.NewMockNode(ctrl)
		node.EXPECT().Languages().Return([]string{"en"})
		node.EXPECT().Path().Return(nodePath).AnyTimes()
		node.EXPECT().UnmaskTargetName(gomock.Any()).DoAndReturn(func(name string) string { return name }).AnyTimes()
		node.EXPECT().ResolvePath(gomock.Any()).Return("").AnyTimes()

		err := newUnconfigured(t).Configure(node, domain.TechOptions{})
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("destination overwrites source", func(t *testing.T) {
		s := newSite(t)
		r := s.newRun(t, runConfig{})
		b := newUnconfigured(t)
		err := b.Configure(r.node, domain.TechOptions{DestTarget: "?.tmpl"})
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("configured twice", func(t *testing.T) {
		s := newSite(t)
		r := s.newRun(t, runConfig{})
		err := r.builder.Configure(r.node, domain.TechOptions{})
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestBuilder_AddLocaleTarget_Errors(t *testing.T) {
	s := newSite(t)

	r := s.newRun(t, runConfig{opts: domain.TechOptions{DestTarget: "index.html"}})
	require.ErrorIs(t, r.builder.AddLocaleTarget("ru"), domain.ErrConfiguration)

	r = s.newRun(t, runConfig{opts: domain.TechOptions{DataTarget: "?.{lang}.hcl"}})
	require.ErrorIs(t, r.builder.AddLocaleTarget("ru"), domain.ErrConfiguration)
}

func TestBuilder_IsRebuildRequired_UnknownTarget(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{})

	_, err := r.builder.IsRebuildRequired(domain.BuildTarget{Path: s.path("index.de.html")})
	require.ErrorIs(t, err, domain.ErrUnknownTarget)
}
