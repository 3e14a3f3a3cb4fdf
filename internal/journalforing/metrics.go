package journalforing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"medvirkning/internal/platform/metrics"
)

const (
	outcomeOK       = "ok"
	outcomeFailed   = "failed"
	outcomeSentinel = "sentinel"
)

type Metrics struct {
	Outcomes *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "journalforing_total",
			Help:      "Journalforing attempts by outcome (ok, failed, sentinel)",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(outcome).Inc()
}
