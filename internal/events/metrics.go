package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"medvirkning/internal/platform/metrics"
)

type Metrics struct {
	Published *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Published: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "kafka_produced_total",
			Help:      "Records produced by topic and outcome",
		}, []string{"topic", "outcome"}),
	}
}

func (m *Metrics) IncPublished(topic string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.Published.WithLabelValues(topic, outcome).Inc()
}
