package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "")

	w := httptest.NewRecorder()
	HandleVersion("Kit", "1.2.3", "2024.1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, "Kit", info.Plugin)
	assert.Equal(t, "1.2.3", info.PluginVersion)
	assert.Equal(t, "2024.1", info.RegistryVersion)
}

func TestGetVersionInfo(t *testing.T) {
	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("VERSION", "v9.9.9")
		assert.Equal(t, "v9.9.9", getVersionInfo())
	})

	t.Run("build value wins", func(t *testing.T) {
		old := Version
		Version = "v1.0.0"
		t.Cleanup(func() { Version = old })
		t.Setenv("VERSION", "v9.9.9")
		assert.Equal(t, "v1.0.0", getVersionInfo())
	})
}
