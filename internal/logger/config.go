package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the default logger is built
type Config struct {
	Level       string
	Format      string
	ServiceName string
	// Version is the plugin version the service was started for
	Version     string
	Environment string
	// Plugin tags every record when the service runs on behalf of one plugin
	Plugin    string
	AddSource bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is used when nothing else is configured
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// CLIConfig keeps command line tools quiet unless asked otherwise
func CLIConfig(verbose bool) Config {
	cfg := DefaultConfig()
	cfg.ServiceName = CLIServiceName
	cfg.Level = LogLevelWarn
	if verbose {
		cfg.Level = LogLevelDebug
		cfg.AddSource = true
	}
	return cfg
}

// LogLevel maps Level to a slog level. Unknown values mean info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.Plugin != "" {
		attrs = append(attrs, slog.String(AttrKeyPlugin, c.Plugin))
	}
	return attrs
}
