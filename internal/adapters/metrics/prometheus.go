package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "i18nhtml"

var _ ports.Recorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implements ports.Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	evaluations    *prom.CounterVec
	targetResults  *prom.CounterVec
	targetDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg registers them with a new private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		evaluations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "data_evaluations_total",
			Help:      "Data artifact evaluations by node",
		}, []string{"node"}),
		targetResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "target_results_total",
			Help:      "Target outcomes by node and status",
		}, []string{"node", "status"}),
		targetDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "target_duration_seconds",
			Help:      "Time spent producing or skipping a target",
			Buckets:   prom.DefBuckets,
		}, []string{"status"}),
	}
	reg.MustRegister(pr.evaluations, pr.targetResults, pr.targetDuration)
	return pr
}

// DataEvaluated counts one evaluation of a data artifact.
func (p *PrometheusRecorder) DataEvaluated(node string) {
	p.evaluations.WithLabelValues(node).Inc()
}

// TargetFinished records the outcome of one target.
func (p *PrometheusRecorder) TargetFinished(node string, status domain.TargetStatus, d time.Duration) {
	p.targetResults.WithLabelValues(node, string(status)).Inc()
	p.targetDuration.WithLabelValues(string(status)).Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.registry
}

// WriteTextfile writes the current metrics in the text exposition format to path,
// as consumed by the node exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics textfile"), "path", path)
	}
	return nil
}
