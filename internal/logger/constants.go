package logger

// Accepted LOG_LEVEL values; "warning" is an alias of "warn"
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "pluginkit"
	CLIServiceName     = "itemctl"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Attribute keys shared by every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyPlugin      = "plugin"
	AttrKeyRequestID   = "request_id"
	AttrKeyComponent   = "component"
)
