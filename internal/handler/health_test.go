package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("All Checks Pass", func(t *testing.T) {
		registry := &MockHealthChecker{}
		registry.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(map[string]HealthChecker{"registry": registry}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"registry":"ok"}}`, w.Body.String())
		registry.AssertExpectations(t)
	})

	t.Run("One Check Fails", func(t *testing.T) {
		ok := HealthCheckFunc(func(_ context.Context) error { return nil })
		failing := &MockHealthChecker{}
		failing.On("CheckHealth", mock.Anything).Return(errors.New("pool stopped"))

		w := httptest.NewRecorder()
		HandleReadyz(map[string]HealthChecker{"registry": ok, "workers": failing}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"workers":"pool stopped"`)
		assert.Contains(t, w.Body.String(), `"registry":"ok"`)
	})

	t.Run("No Checks", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
