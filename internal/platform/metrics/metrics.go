package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric the service exports.
const Namespace = "ismanglendemedvirkning"

// Metrics holds the HTTP-level Prometheus metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
}

// New creates and registers the HTTP metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route and method",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"route", "method"}),
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
	}
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
