package bootstrap

import (
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/osse101/PluginKit_Go/internal/config"
	"github.com/osse101/PluginKit_Go/internal/logger"
)

// SetupLogger installs the default logger from cfg and logs the startup lines
func SetupLogger(cfg *config.Config) *slog.Logger {
	return SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger writing to w
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	addSource := slices.Contains(DevEnvironments, cfg.Environment)
	lc := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.PluginVersion,
		cfg.Environment,
		addSource,
	)
	lc.Plugin = cfg.PluginName
	l := logger.InitLoggerWithWriter(lc, w)

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStarting, "plugin_version", cfg.PluginVersion)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"registry_path", cfg.RegistryPath,
		"update_check_enabled", cfg.UpdateCheckEnabled,
		"workers", cfg.WorkerCount,
		"api_key_set", cfg.APIKey != "")
	return l
}
