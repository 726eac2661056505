// internal/server/middleware.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/metrics"
	"suggestion-mesh/internal/common/observability"

	"github.com/google/uuid"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps a handler with middlewares, first argument outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDFromContext returns the request ID set by the RequestID middleware.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestID assigns each request an ID, honoring X-Request-ID from the
// caller so IDs propagate across service hops.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set("X-Request-ID", id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recovery converts panics into logged internal errors so one bad request
// cannot take the service down.
func Recovery(log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic recovered in handler", map[string]interface{}{
						"panic":     rec,
						"path":      r.URL.Path,
						"method":    r.Method,
						"requestId": RequestIDFromContext(r.Context()),
					})
					WriteError(w, nil, errors.NewInternalError(fmt.Errorf("panic: %v", rec)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog logs every request and records request metrics.
func AccessLog(serviceName string, log logger.Logger, obs *observability.Observability) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			duration := time.Since(start)
			status := strconv.Itoa(recorder.status)

			log.Info("Request handled", map[string]interface{}{
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    recorder.status,
				"duration":  duration.String(),
				"requestId": RequestIDFromContext(r.Context()),
			})

			metrics.RequestsTotal.WithLabelValues(serviceName, r.URL.Path, status).Inc()
			metrics.RequestDuration.WithLabelValues(serviceName, r.URL.Path).Observe(duration.Seconds())

			if obs != nil {
				obs.RecordRequestProcessed(r.Context(), r.URL.Path, status)
				obs.RecordRequestDuration(r.Context(), r.URL.Path, duration, status)
			}
		})
	}
}
