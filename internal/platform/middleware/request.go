package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"medvirkning/internal/platform/metrics"
	"medvirkning/pkg/requestcontext"
)

const CallIDHeader = "Nav-Call-Id"

// CallID reads the correlation id from the Nav-Call-Id header, generating one
// when absent, and echoes it on the response.
func CallID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callID := r.Header.Get(CallIDHeader)
		if callID == "" {
			callID = uuid.NewString()
		}
		w.Header().Set(CallIDHeader, callID)
		next.ServeHTTP(w, r.WithContext(requestcontext.WithCallID(r.Context(), callID)))
	})
}

// RequestTime captures the current time at the start of the request so every
// timestamp within it agrees.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recovery turns a handler panic into a 500 and logs the stack.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"call_id", requestcontext.CallID(r.Context()),
						"stack", string(debug.Stack()),
					)
					writeJSONError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Logger logs one line per request and records its latency.
func Logger(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := routePattern(r)
			m.ObserveRequest(route, r.Method, rec.Status(), elapsed)

			level := slog.LevelInfo
			if rec.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "request completed",
				"method", r.Method,
				"route", route,
				"status", rec.Status(),
				"duration_ms", elapsed.Milliseconds(),
				"call_id", requestcontext.CallID(r.Context()),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
