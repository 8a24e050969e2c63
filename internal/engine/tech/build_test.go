package tech_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/i18nhtml/internal/adapters/graph"
	"go.trai.ch/i18nhtml/internal/adapters/hcldata"
	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func statuses(report *domain.BuildReport) map[string]domain.TargetStatus {
	out := make(map[string]domain.TargetStatus, len(report.Results))
	for _, res := range report.Results {
		out[res.Target.String()] = res.Status
	}
	return out
}

func TestBuild_Greeting(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{})

	report, err := r.build(t)
	require.NoError(t, err)

	assert.Equal(t, "Hello", s.read(t, "index.en.html"))
	assert.Equal(t, nodePath, report.Node)
	_, parseErr := uuid.Parse(report.InvocationID)
	require.NoError(t, parseErr)

	res, ok := report.Result(s.path("index.en.html"))
	require.True(t, ok)
	assert.Equal(t, domain.TargetStatusBuilt, res.Status)
	assert.Equal(t, len("Hello"), res.Bytes)
	assert.Equal(t, 1, report.Written())
	assert.Empty(t, r.graph.(*graph.Graph).Pending())

	assert.Equal(t, 1, r.tape.CompletedCount())
	assert.Zero(t, r.tape.CachedCount())
	assert.Zero(t, r.tape.ErroredCount())
}

func TestBuild_Idempotent(t *testing.T) {
	s := newSite(t)

	report, err := s.newRun(t, runConfig{locales: []string{"ru"}}).build(t)
	require.NoError(t, err)
	require.Equal(t, 2, report.Written())

	before, err := os.Stat(s.path("index.ru.html"))
	require.NoError(t, err)

	r := s.newRun(t, runConfig{locales: []string{"ru"}})
	report, err = r.build(t)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Written())
	assert.Equal(t, map[string]domain.TargetStatus{
		"index.en.html": domain.TargetStatusSkipped,
		"index.ru.html": domain.TargetStatusSkipped,
	}, statuses(report))
	assert.Empty(t, r.graph.(*graph.Graph).Pending())
	assert.Equal(t, 2, r.tape.CachedCount())
	assert.Equal(t, 2, r.tape.CompletedCount())

	after, err := os.Stat(s.path("index.ru.html"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.Equal(t, "Привет", s.read(t, "index.ru.html"))
}

func TestBuild_Staleness(t *testing.T) {
	tests := []struct {
		name   string
		change func(t *testing.T, s *site)
		stale  map[string]bool
	}{
		{
			name:   "template",
			change: func(t *testing.T, s *site) { s.write(t, "index.tmpl", greetingTemplate+"\n") },
			stale:  map[string]bool{"index.en.html": true, "index.ru.html": true},
		},
		{
			name:   "data",
			change: func(t *testing.T, s *site) { s.write(t, "index.data.hcl", `{block: "greeting", v: 2}`) },
			stale:  map[string]bool{"index.en.html": true, "index.ru.html": true},
		},
		{
			name:   "locale-all",
			change: func(t *testing.T, s *site) { s.write(t, "index.lang.all.hcl", `{en: {hello: "Hi"}}`) },
			stale:  map[string]bool{"index.en.html": true, "index.ru.html": true},
		},
		{
			name:   "locale-one",
			change: func(t *testing.T, s *site) { s.write(t, "index.lang.en.hcl", `{hello: "Hey"}`) },
			stale:  map[string]bool{"index.en.html": true, "index.ru.html": false},
		},
		{
			name:   "destination modified",
			change: func(t *testing.T, s *site) { s.write(t, "index.ru.html", "tampered") },
			stale:  map[string]bool{"index.en.html": false, "index.ru.html": true},
		},
		{
			name: "destination missing",
			change: func(t *testing.T, s *site) {
				require.NoError(t, os.Remove(s.path("index.en.html")))
			},
			stale: map[string]bool{"index.en.html": true, "index.ru.html": false},
		},
		{
			name:   "nothing",
			change: func(*testing.T, *site) {},
			stale:  map[string]bool{"index.en.html": false, "index.ru.html": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSite(t)
			_, err := s.newRun(t, runConfig{locales: []string{"ru"}}).build(t)
			require.NoError(t, err)

			tt.change(t, s)

			r := s.newRun(t, runConfig{locales: []string{"ru"}})
			targets, err := r.builder.Targets()
			require.NoError(t, err)
			for _, target := range targets {
				stale, err := r.builder.IsRebuildRequired(target)
				require.NoError(t, err)
				assert.Equal(t, tt.stale[target.String()], stale, target.String())
			}

			report, err := r.build(t)
			require.NoError(t, err)
			for name, stale := range tt.stale {
				want := domain.TargetStatusSkipped
				if stale {
					want = domain.TargetStatusBuilt
				}
				assert.Equal(t, want, statuses(report)[name], name)
			}
		})
	}
}

func TestBuild_UnreadableFingerprintRecord(t *testing.T) {
	s := newSite(t)
	_, err := s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)

	entries, err := os.ReadDir(s.project.CacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	record := filepath.Join(s.project.CacheDir, entries[0].Name())
	require.NoError(t, os.WriteFile(record, []byte("{trunc"), domain.FilePerm))
	s.write(t, "index.lang.all.hcl", `{en: {hello: "Hi"}}`)

	report, err := s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written())
	assert.Equal(t, "Hi", s.read(t, "index.en.html"))

	report, err = s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written())
}

func TestBuild_NeverBuiltIsStale(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{})

	targets, err := r.builder.Targets()
	require.NoError(t, err)
	stale, err := r.builder.IsRebuildRequired(targets[0])
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestBuild_Force(t *testing.T) {
	s := newSite(t)
	_, err := s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)

	report, err := s.newRun(t, runConfig{force: true}).build(t)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written())
}

func TestBuild_EvaluatesDataOnce(t *testing.T) {
	s := newSite(t)
	ctrl := gomock.NewController(t)

	evaluator := mocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().
		Evaluate(gomock.Any(), s.path("index.data.hcl")).
		DoAndReturn(hcldata.NewEvaluator().Evaluate).
		Times(1)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().DataEvaluated(nodePath).Times(1)
	recorder.EXPECT().TargetFinished(nodePath, domain.TargetStatusBuilt, gomock.Any()).Times(3)

	r := s.newRun(t, runConfig{
		locales:   []string{"ru", "de"},
		evaluator: evaluator,
		recorder:  recorder,
	})
	s.write(t, "index.lang.de.hcl", `{de: {hello: "Hallo"}}`)

	report, err := r.build(t)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Written())
	assert.Equal(t, "Hello", s.read(t, "index.en.html"))
	assert.Equal(t, "Привет", s.read(t, "index.ru.html"))
	assert.Equal(t, "Hallo", s.read(t, "index.de.html"))
}

func TestBuild_SkipsEvaluationWhenFresh(t *testing.T) {
	s := newSite(t)
	_, err := s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockEvaluator(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().TargetFinished(nodePath, domain.TargetStatusSkipped, gomock.Any()).Times(1)

	report, err := s.newRun(t, runConfig{evaluator: evaluator, recorder: recorder}).build(t)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Written())
}

func TestBuild_DataSyntaxError(t *testing.T) {
	s := newSite(t)
	s.write(t, "index.data.hcl", `{block: `)
	r := s.newRun(t, runConfig{locales: []string{"ru"}})

	report, err := r.build(t)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrDataSyntax)
	assert.Contains(t, err.Error(), s.path("index.data.hcl"))
	assert.Contains(t, err.Error(), "syntax error")
	assert.Contains(t, err.Error(), "Missing expression")

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Written())
	assert.Len(t, report.Failed(), 2)
	assert.NoFileExists(t, s.path("index.en.html"))
	assert.NoFileExists(t, s.path("index.ru.html"))
	assert.Empty(t, r.graph.(*graph.Graph).Pending())
}

func TestBuild_RenderErrorIsolation(t *testing.T) {
	s := newSite(t)
	s.write(t, "index.tmpl", `{{define "greeting"}}{{i18n "hello"}}{{if eq lang "ru"}}{{index .items 5}}{{end}}{{end}}`)
	s.write(t, "index.data.hcl", `{block: "greeting", items: [1]}`)
	r := s.newRun(t, runConfig{locales: []string{"ru"}})

	report, err := r.build(t)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrPartialFailure)
	require.ErrorIs(t, err, domain.ErrRender)

	assert.Equal(t, map[string]domain.TargetStatus{
		"index.en.html": domain.TargetStatusBuilt,
		"index.ru.html": domain.TargetStatusFailed,
	}, statuses(report))
	assert.Equal(t, "Hello", s.read(t, "index.en.html"))
	assert.NoFileExists(t, s.path("index.ru.html"))
	assert.Contains(t, err.Error(), s.path("index.ru.html"))
	assert.NotContains(t, err.Error(), s.path("index.en.html"))
	assert.Equal(t, 1, r.tape.ErroredCount())
	assert.Equal(t, 2, r.tape.CompletedCount())

	// The failed target has no fingerprints and is retried on the next run.
	report, err = s.newRun(t, runConfig{locales: []string{"ru"}}).build(t)
	require.ErrorIs(t, err, domain.ErrPartialFailure)
	assert.Equal(t, map[string]domain.TargetStatus{
		"index.en.html": domain.TargetStatusSkipped,
		"index.ru.html": domain.TargetStatusFailed,
	}, statuses(report))
}

func TestBuild_CompletesOneVertexPerTarget(t *testing.T) {
	s := newSite(t)
	_, err := s.newRun(t, runConfig{}).build(t)
	require.NoError(t, err)
	s.write(t, "index.lang.ru.hcl", `{hello: "Здравствуйте"}`)

	ctrl := gomock.NewController(t)
	telemetry := mocks.NewMockTelemetry(ctrl)
	en := mocks.NewMockVertex(ctrl)
	ru := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), s.path("index.en.html")).Return(en)
	telemetry.EXPECT().Record(gomock.Any(), s.path("index.ru.html")).Return(ru)
	gomock.InOrder(
		en.EXPECT().Cached(),
		en.EXPECT().Complete(nil),
	)
	gomock.InOrder(
		ru.EXPECT().Log("wrote 24 bytes"),
		ru.EXPECT().Complete(nil),
	)

	report, err := s.newRun(t, runConfig{locales: []string{"ru"}, telemetry: telemetry}).build(t)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written())
	assert.Equal(t, "Здравствуйте", s.read(t, "index.ru.html"))
}

func TestBuild_UpstreamUnavailable(t *testing.T) {
	s := newSite(t)
	require.NoError(t, os.Remove(s.path("index.lang.all.hcl")))
	r := s.newRun(t, runConfig{})

	report, err := r.build(t)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	require.NotNil(t, report)
	assert.Len(t, report.Failed(), 1)
	assert.NoFileExists(t, s.path("index.en.html"))
}

func TestBuild_UndeclaredTarget(t *testing.T) {
	s := newSite(t)
	r := s.newRun(t, runConfig{})
	require.NoError(t, r.builder.AddLocaleTarget("ru"))

	report, err := r.build(t)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Nil(t, report)
	assert.NoFileExists(t, s.path("index.en.html"))
}
