package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	platformmetrics "medvirkning/internal/platform/metrics"
)

// Metrics provides observability for the vurdering module.
type Metrics struct {
	// Created vurderinger by type
	Created *prometheus.CounterVec

	// Creation announcements that were not acknowledged or not marked
	PublishFailures prometheus.Counter

	// Filing outcomes per item in the journalforing scan
	Journalfort *prometheus.CounterVec

	// Write-once updates that touched an unexpected number of rows
	ConsistencyErrors *prometheus.CounterVec

	// End-to-end latency of a creation request, pdf rendering included
	CreateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all vurdering metrics registered.
func New() *Metrics {
	return &Metrics{
		Created: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: platformmetrics.Namespace,
			Name:      "vurdering_created_total",
			Help:      "Total vurderinger created by type",
		}, []string{"type"}),

		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: platformmetrics.Namespace,
			Name:      "vurdering_publish_failures_total",
			Help:      "Vurdering announcements that failed after the vurdering was stored",
		}),

		Journalfort: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: platformmetrics.Namespace,
			Name:      "vurdering_journalfort_total",
			Help:      "Vurderinger processed by the journalforing scan by outcome",
		}, []string{"outcome"}), // outcome: "ok", "failed"

		ConsistencyErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: platformmetrics.Namespace,
			Name:      "consistency_errors_total",
			Help:      "Write-once updates that did not affect exactly one row",
		}, []string{"operation"}),

		CreateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: platformmetrics.Namespace,
			Name:      "vurdering_create_duration_seconds",
			Help:      "Duration of vurdering creation including pdf rendering",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

func (m *Metrics) IncCreated(vurderingType string) {
	if m != nil {
		m.Created.WithLabelValues(vurderingType).Inc()
	}
}

func (m *Metrics) IncPublishFailure() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}

func (m *Metrics) IncJournalfort(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.Journalfort.WithLabelValues("ok").Inc()
		return
	}
	m.Journalfort.WithLabelValues("failed").Inc()
}

func (m *Metrics) IncConsistencyError(operation string) {
	if m != nil {
		m.ConsistencyErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) ObserveCreateLatency(d time.Duration) {
	if m != nil {
		m.CreateLatency.Observe(d.Seconds())
	}
}
