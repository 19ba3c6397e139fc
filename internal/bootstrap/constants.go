package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting PluginKit"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgRegistryLoaded      = "Material registry loaded"
	LogMsgWorkersStarted      = "Worker pool started"
	LogMsgEngineReady         = "Item descriptor engine ready"
	LogMsgCheckerReady        = "Update checker ready"
	LogMsgCheckerNotStarted   = "Update checker not started"
)

// Log messages for the event system
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgUpdateAvailable            = "Update available"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkers      = "Stopping worker pool"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgLoadRegistry  = "failed to load material registry: %w"
	ErrMsgCreateEngine  = "failed to create item engine: %w"
	ErrMsgCreateChecker = "failed to create update checker: %w"
)

// Component names used in readiness checks
const (
	ComponentRegistry = "registry"
	ComponentWorkers  = "workers"
)

// DevEnvironments get source locations in log lines
var DevEnvironments = []string{"dev", "development"}
