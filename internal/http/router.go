// Package httpapi assembles the service's HTTP surface: the shared middleware
// chain, the internal probe endpoints and the API handlers.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"medvirkning/internal/platform/metrics"
	"medvirkning/internal/platform/middleware"
)

// Registrar mounts its routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// NewRouter wires the middleware chain, the /internal endpoints and every
// registrar. Probe endpoints are not logged or traced.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, ready ReadinessCheck, registrars ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Route("/internal", func(r chi.Router) {
		r.Get("/is_alive", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Get("/is_ready", handleReady(ready, logger))
		r.Handle("/metrics", metrics.Handler())
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.CallID)
		r.Use(middleware.Recovery(logger))
		r.Use(middleware.Tracing)
		r.Use(middleware.RequestTime)
		r.Use(middleware.Logger(logger, m))
		for _, reg := range registrars {
			reg.Register(r)
		}
	})
	return r
}

func handleReady(ready ReadinessCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready == nil {
			w.WriteHeader(http.StatusOK)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ready(ctx); err != nil {
			logger.WarnContext(ctx, "readiness check failed", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
