package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/osse101/PluginKit_Go/internal/logger"
)

// isPublic reports whether path is served without an API key
func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires X-API-Key on every non-public path. An empty key
// disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed the detector's budget
func RateLimitMiddleware(trustedProxies []string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(HeaderContentType, HeaderValueNoSniff)
		h.Set(HeaderFrameOptions, HeaderValueDeny)
		h.Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)
		next.ServeHTTP(w, r)
	})
}

// ActivityDetector keeps a token bucket per client IP allowing limit
// requests per RateWindow, and counts failed logins over the same window
type ActivityDetector struct {
	limit int
	now   func() time.Time

	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	throttled   map[string]int
	failedAuth  map[string]int
	windowStart time.Time
}

// NewActivityDetector allows limit requests per client per RateWindow.
// A limit below 1 disables rate limiting.
func NewActivityDetector(limit int) *ActivityDetector {
	return &ActivityDetector{
		limit:       limit,
		now:         time.Now,
		limiters:    make(map[string]*rate.Limiter),
		throttled:   make(map[string]int),
		failedAuth:  make(map[string]int),
		windowStart: time.Now(),
	}
}

// RecordFailedAuth counts a failed authentication attempt
func (d *ActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetIfExpired()
	d.failedAuth[ip]++
	if n := d.failedAuth[ip]; n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// RecordRequest takes a token for ip and reports whether one was available
func (d *ActivityDetector) RecordRequest(ip string) bool {
	if d.limit < 1 {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetIfExpired()
	lim, ok := d.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(float64(d.limit)/RateWindow.Seconds()), d.limit)
		d.limiters[ip] = lim
	}
	if lim.AllowN(d.now(), 1) {
		return true
	}

	d.throttled[ip]++
	if n := d.throttled[ip]; n%RateAlertEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "blocked_in_window", n)
	}
	return false
}

// FailedAuthCount returns the failures recorded for ip in the current window
func (d *ActivityDetector) FailedAuthCount(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetIfExpired()
	return d.failedAuth[ip]
}

// resetIfExpired starts a new counting window and forgets clients whose
// bucket has refilled. Caller must hold the mutex.
func (d *ActivityDetector) resetIfExpired() {
	now := d.now()
	if now.Sub(d.windowStart) <= RateWindow {
		return
	}
	d.failedAuth = make(map[string]int)
	d.throttled = make(map[string]int)
	for ip, lim := range d.limiters {
		if lim.TokensAt(now) >= float64(d.limit) {
			delete(d.limiters, ip)
		}
	}
	d.windowStart = now
}

// clientIP returns the remote address, or the last X-Forwarded-For hop when
// the connection comes from a trusted proxy
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}
	return remoteIP
}
