package handler

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// ReadinessTimeout bounds all readiness checks of one request
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker
type HealthCheckFunc func(ctx context.Context) error

// CheckHealth calls f
func (f HealthCheckFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz runs every named check and reports 503 if any fails
func HandleReadyz(checks map[string]HealthChecker) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		results := make(map[string]string, len(names))
		healthy := true
		for _, name := range names {
			if err := checks[name].CheckHealth(ctx); err != nil {
				logFromRequest(r).Error(LogMsgReadinessFailed, "check", name, "error", err)
				results[name] = err.Error()
				healthy = false
				continue
			}
			results[name] = StatusOK
		}

		if !healthy {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgNotReady,
				Checks:  results,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Checks: results})
	}
}
