package cronjob

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"medvirkning/internal/platform/metrics"
)

const (
	outcomeOK      = "ok"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

type Metrics struct {
	Runs     *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Runs: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "cronjob_runs_total",
			Help:      "Cronjob ticks by job and outcome (ok, failed, skipped)",
		}, []string{"job", "outcome"}),
		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "cronjob_duration_seconds",
			Help:      "Duration of cronjob runs",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"job"}),
	}
}

func (m *Metrics) IncRun(job, outcome string) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(job, outcome).Inc()
}

func (m *Metrics) ObserveDuration(job string, d time.Duration) {
	if m == nil {
		return
	}
	m.Duration.WithLabelValues(job).Observe(d.Seconds())
}
