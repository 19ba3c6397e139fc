package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/handler"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
	"github.com/osse101/PluginKit_Go/internal/registry"
	"github.com/osse101/PluginKit_Go/internal/sse"
	"github.com/osse101/PluginKit_Go/internal/updatecheck"
)

type fakeUpdates struct {
	err    error
	checks atomic.Int32
}

func (f *fakeUpdates) Status() updatecheck.Status {
	return updatecheck.Status{Plugin: "Kit", Enabled: true, CurrentVersion: "1.0", LastVersion: "1.1", UpdateRequired: true}
}

func (f *fakeUpdates) CheckNow(ctx context.Context) error {
	f.checks.Add(1)
	return f.err
}

func newTestServer(t *testing.T, opts Options) (*Server, *fakeUpdates) {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	engine, err := itemstr.New(reg)
	require.NoError(t, err)

	updates := &fakeUpdates{}
	srv := NewServer(opts, Dependencies{
		Items:   engine,
		Updates: updates,
		Readiness: map[string]handler.HealthChecker{
			"registry": handler.HealthCheckFunc(func(context.Context) error { return nil }),
		},
		Plugin:          "Kit",
		PluginVersion:   "1.0",
		RegistryVersion: reg.Version(),
	})
	return srv, updates
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv, updates := newTestServer(t, Options{Addr: ":0"})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"healthz", http.MethodGet, "/healthz", "", http.StatusOK, `"status":"ok"`},
		{"readyz", http.MethodGet, "/readyz", "", http.StatusOK, `"registry":"ok"`},
		{"version", http.MethodGet, "/version", "", http.StatusOK, `"plugin":"Kit"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "http_requests_in_flight"},
		{"parse", http.MethodGet, "/api/v1/items/parse?descriptor=DIAMOND*3", "", http.StatusOK, `"amount":3`},
		{"parse bad descriptor", http.MethodGet, "/api/v1/items/parse?descriptor=NOT_A_THING", "", http.StatusBadRequest, handler.ErrMsgInvalidDescriptorError},
		{"compare", http.MethodPost, "/api/v1/items/compare", `{"descriptor":"DIAMOND*3","material_id":264,"amount":5}`, http.StatusOK, `"matches":true`},
		{"update status", http.MethodGet, "/api/v1/updates/status", "", http.StatusOK, `"last_version":"1.1"`},
		{"update check", http.MethodPost, "/api/v1/updates/check", "", http.StatusOK, `"update_required":true`},
		{"wrong method", http.MethodGet, "/api/v1/items/compare", "", http.StatusMethodNotAllowed, ""},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound, ""},
		{"events without hub", http.MethodGet, "/api/v1/events", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := serve(srv, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}

	assert.Equal(t, int32(1), updates.checks.Load())
}

// The stream passes through every middleware, so this also checks that the
// writer wrappers still flush.
func TestServer_EventStream(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(Options{APIKey: "secret"}, Dependencies{Events: hub})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, "secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: "), "first frame should arrive before any broadcast")
}

func TestServer_UpdateCheckFailure(t *testing.T) {
	srv, updates := newTestServer(t, Options{})
	updates.err = domain.ErrUpdateCheckDisabled

	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/updates/check", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_APIKey(t *testing.T) {
	srv, _ := newTestServer(t, Options{APIKey: "secret"})

	t.Run("missing key", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/updates/status", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/updates/status", nil)
		req.Header.Set(HeaderAPIKey, "secret")
		assert.Equal(t, http.StatusOK, serve(srv, req).Code)
	})

	t.Run("public paths stay open", func(t *testing.T) {
		for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
			assert.Equal(t, http.StatusOK, serve(srv, httptest.NewRequest(http.MethodGet, path, nil)).Code, path)
		}
	})
}

func TestServer_RequestID(t *testing.T) {
	srv, _ := newTestServer(t, Options{})

	t.Run("generated", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/updates/status", nil))
		_, err := uuid.Parse(rec.Header().Get(HeaderRequestID))
		assert.NoError(t, err)
	})

	t.Run("valid client id is kept", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/updates/status", nil)
		req.Header.Set(HeaderRequestID, id)
		assert.Equal(t, id, serve(srv, req).Header().Get(HeaderRequestID))
	})

	t.Run("garbage client id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/updates/status", nil)
		req.Header.Set(HeaderRequestID, "not\x7fan-id")
		got := serve(srv, req).Header().Get(HeaderRequestID)
		assert.NotEqual(t, "not\x7fan-id", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

func TestServer_SecurityHeaders(t *testing.T) {
	srv, _ := newTestServer(t, Options{})
	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerNoReferrer, rec.Header().Get(HeaderReferrerPolicy))
}

func TestServer_BodyLimit(t *testing.T) {
	srv, _ := newTestServer(t, Options{MaxBodyBytes: 32})
	body := `{"descriptor":"` + strings.Repeat("A", 100) + `"}`

	rec := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/items/compare", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RateLimit(t *testing.T) {
	srv, _ := newTestServer(t, Options{RateLimit: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		codes = append(codes, serve(srv, req).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestSanitizeHeaders(t *testing.T) {
	in := http.Header{}
	in.Set(HeaderAPIKey, "secret")
	in.Set(HeaderAuthorization, "Bearer x")
	in.Set("Accept", "application/json")

	out := sanitizeHeaders(in)

	assert.Equal(t, RedactedValue, out.Get(HeaderAPIKey))
	assert.Equal(t, RedactedValue, out.Get(HeaderAuthorization))
	assert.Equal(t, "application/json", out.Get("Accept"))
	assert.Equal(t, "secret", in.Get(HeaderAPIKey))
}
