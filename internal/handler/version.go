package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version         string `json:"version"`
	GoVersion       string `json:"go_version"`
	BuildTime       string `json:"build_time,omitempty"`
	GitCommit       string `json:"git_commit,omitempty"`
	Plugin          string `json:"plugin"`
	PluginVersion   string `json:"plugin_version"`
	RegistryVersion string `json:"registry_version,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports the build and the plugin it runs for
func HandleVersion(plugin, pluginVersion, registryVersion string) http.HandlerFunc {
	info := VersionInfo{
		Version:         getVersionInfo(),
		GoVersion:       runtime.Version(),
		BuildTime:       BuildTime,
		GitCommit:       GitCommit,
		Plugin:          plugin,
		PluginVersion:   pluginVersion,
		RegistryVersion: registryVersion,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// getVersionInfo prefers the build-time value, then $VERSION
func getVersionInfo() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
