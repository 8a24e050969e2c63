package tech_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/i18nhtml/internal/adapters/cas"
	"go.trai.ch/i18nhtml/internal/adapters/fs"
	"go.trai.ch/i18nhtml/internal/adapters/graph"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/adapters/metrics"
	"go.trai.ch/i18nhtml/internal/adapters/render"
	"go.trai.ch/i18nhtml/internal/adapters/telemetry/progrock"
	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/i18nhtml/internal/core/ports/mocks"
	"go.trai.ch/i18nhtml/internal/engine/tech"
	"go.uber.org/mock/gomock"
)

const nodePath = "pages/index"

const (
	greetingTemplate = `{{define "greeting"}}{{i18n "hello"}}{{end}}`
	greetingData     = `{block: "greeting"}`
	greetingCatalog  = `{en: {hello: "Hello"}, ru: {hello: "Привет"}}`
)

// site is a project with a single node holding the default source files.
type site struct {
	root    string
	dir     string
	project *domain.Project
}

func newSite(t *testing.T) *site {
	t.Helper()
	root := t.TempDir()
	s := &site{
		root: root,
		dir:  filepath.Join(root, "pages", "index"),
		project: &domain.Project{
			Root:        root,
			Languages:   []string{"en", "ru"},
			CacheDir:    filepath.Join(root, domain.DefaultCachePath()),
			Parallelism: 2,
			Nodes:       []domain.NodeConfig{{Path: nodePath, Techs: []domain.TechOptions{{}}}},
		},
	}
	require.NoError(t, os.MkdirAll(s.dir, domain.DirPerm))
	s.write(t, "index.tmpl", greetingTemplate)
	s.write(t, "index.data.hcl", greetingData)
	s.write(t, "index.lang.all.hcl", greetingCatalog)
	s.write(t, "index.lang.en.hcl", `{}`)
	s.write(t, "index.lang.ru.hcl", `{}`)
	return s
}

func (s *site) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *site) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.path(name), []byte(content), domain.FilePerm))
}

func (s *site) read(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(s.path(name))
	require.NoError(t, err)
	return string(content)
}

// run holds one configured builder inside a fresh graph.
type run struct {
	graph   ports.Graph
	node    ports.Node
	builder *tech.Builder
	tape    *vprogrock.Tape
}

type runConfig struct {
	opts      domain.TechOptions
	locales   []string
	force     bool
	evaluator ports.Evaluator
	recorder  ports.Recorder
	telemetry ports.Telemetry
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

// newRun configures a builder for the site's node. Extra locales add one target each.
func (s *site) newRun(t *testing.T, cfg runConfig) *run {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)

	g, err := graph.NewFactory(cas.NewStore(), fs.NewHasher(), fs.NewVerifier(), log).
		New(s.project, ports.GraphOptions{Force: cfg.force})
	require.NoError(t, err)
	n, err := g.Node(nodePath)
	require.NoError(t, err)

	evaluator := cfg.evaluator
	if evaluator == nil {
		evaluator = hcldata.NewEvaluator()
	}
	recorder := cfg.recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	tape := vprogrock.NewTape()
	telemetry := cfg.telemetry
	if telemetry == nil {
		telemetry = progrock.NewRecorder(tape)
	}

	b := tech.NewBuilder(evaluator, render.NewRenderer(hcldata.NewEvaluator()), log, recorder, telemetry)
	require.NoError(t, b.Configure(n, cfg.opts))
	for _, lang := range cfg.locales {
		require.NoError(t, b.AddLocaleTarget(lang))
	}

	targets, err := b.Targets()
	require.NoError(t, err)
	for _, target := range targets {
		require.NoError(t, g.Declare(target.Path, nodePath+"#0"))
	}
	return &run{graph: g, node: n, builder: b, tape: tape}
}

func (r *run) build(t *testing.T) (*domain.BuildReport, error) {
	t.Helper()
	return r.builder.Build(context.Background())
}
