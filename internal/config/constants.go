package config

import "time"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvPluginName          = "PLUGIN_NAME"
	EnvPluginVersion       = "PLUGIN_VERSION"
	EnvUpdateCheckEnabled  = "UPDATE_CHECK_ENABLED"
	EnvCurseProjectID      = "CURSE_PROJECT_ID"
	EnvBukkitDevSlug       = "BUKKITDEV_SLUG"
	EnvUpdateAPIURL        = "UPDATE_API_URL"
	EnvUpdatePermission    = "UPDATE_PERMISSION"
	EnvUpdateCheckPeriod   = "UPDATE_CHECK_PERIOD"
	EnvRegistryPath        = "REGISTRY_PATH"
	EnvWorkerCount         = "WORKER_COUNT"
	EnvWorkerQueueSize     = "WORKER_QUEUE_SIZE"
	EnvItemCacheSize       = "ITEM_CACHE_SIZE"
	EnvPlaceholderMaterial = "LEGACY_PLACEHOLDER_MATERIAL"
	EnvShutdownTimeout     = "SHUTDOWN_TIMEOUT"
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
	EnvAPIKey              = "API_KEY"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvRateLimit           = "RATE_LIMIT"
)

// Defaults
const (
	DefaultPort               = "8080"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultPluginName         = "PluginKit"
	DefaultPluginVersion      = "dev"
	DefaultWorkerCount        = 2
	DefaultWorkerQueueSize    = 64
	DefaultItemCacheSize      = 512
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultUpdateCheckEnabled = true
	DefaultRateLimit          = 1000
)

// Error messages
const (
	ErrMsgInvalidPort   = "invalid PORT value: %w"
	ErrMsgInvalidConfig = "%w: %v"
)
