package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PluginKit_Go/internal/handler"
	"github.com/osse101/PluginKit_Go/internal/logger"
	"github.com/osse101/PluginKit_Go/internal/metrics"
	"github.com/osse101/PluginKit_Go/internal/sse"
)

// Options holds transport settings
type Options struct {
	Addr           string
	APIKey         string
	TrustedProxies []string
	// RateLimit is requests per client per RateWindow; 0 disables it
	RateLimit    int
	MaxBodyBytes int64
}

// Dependencies are the services behind the routes
type Dependencies struct {
	Items     handler.ItemService
	Updates   handler.UpdateService
	Readiness map[string]handler.HealthChecker
	// Events backs the event stream; the route is absent when nil
	Events *sse.Hub

	Plugin          string
	PluginVersion   string
	RegistryVersion string
}

type Server struct {
	httpServer *http.Server
	detector   *ActivityDetector
}

// NewServer builds the router and the http.Server around it
func NewServer(opts Options, deps Dependencies) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	detector := NewActivityDetector(opts.RateLimit)

	r := chi.NewRouter()

	// Outermost first
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(SecurityHeadersMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Readiness))
	r.Get("/version", handler.HandleVersion(deps.Plugin, deps.PluginVersion, deps.RegistryVersion))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/parse", handler.HandleParseItem(deps.Items))
			r.Post("/compare", handler.HandleCompareItem(deps.Items))
		})
		r.Route("/updates", func(r chi.Router) {
			r.Get("/status", handler.HandleUpdateStatus(deps.Updates))
			r.Post("/check", handler.HandleUpdateCheck(deps.Updates))
		})
		if deps.Events != nil {
			r.Get("/events", sse.Handler(deps.Events))
		}
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		detector: detector,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Stop is called. A clean stop returns nil.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}

// statusWriter wraps http.ResponseWriter to capture the status code
type statusWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *statusWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *statusWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *statusWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// loggingMiddleware tags every request with an id and logs start and end.
// A client supplied X-Request-ID is kept only if it is a UUID.
// Probe and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		if isPublic(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for k, v := range in {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}
