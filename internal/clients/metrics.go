package clients

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"medvirkning/internal/platform/metrics"
)

// Metrics counts outbound calls per collaborator.
type Metrics struct {
	Calls    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the outbound call metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Calls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "client_calls_total",
			Help:      "Outbound calls by collaborator and outcome",
		}, []string{"collaborator", "outcome"}),
		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Name:      "client_call_duration_seconds",
			Help:      "Duration of outbound calls by collaborator",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collaborator"}),
	}
}

// Observe records one call. outcome is "ok" or the failure category.
func (m *Metrics) Observe(collaborator string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(CategoryOf(err))
	}
	m.Calls.WithLabelValues(collaborator, outcome).Inc()
	m.Duration.WithLabelValues(collaborator).Observe(d.Seconds())
}
