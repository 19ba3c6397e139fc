package updatecheck

import "time"

// Remote endpoints
const (
	DefaultAPIBaseURL = "https://api.curseforge.com"
	APIPathFormat     = "%s/servermods/files?projectIds=%s"
	InfoURLFormat     = "http://dev.bukkit.org/projects/%s/"
)

// Request settings
const (
	HeaderUserAgent    = "User-Agent"
	UserAgentFormat    = "%s using UpdateChecker (by fromgate)"
	DefaultHTTPTimeout = 10 * time.Second
	// MaxResponseBytes caps how much of the file list is read
	MaxResponseBytes = 1 << 20
)

// Scheduling, in server ticks
const (
	InitialDelayMinTicks = 40
	InitialDelaySpread   = 20
	DefaultPeriodTicks   = 60 * 1200
)

// PermissionSuffix is appended to the slug for the default notify permission
const PermissionSuffix = ".config"

// Message placeholders
const (
	PlaceholderPlugin     = "%plugin%"
	PlaceholderNewVersion = "%newversion%"
	PlaceholderOldVersion = "%oldversion%"
	PlaceholderURL        = "%url%"
)

// DefaultMessages are sent to permitted players when an update is out
var DefaultMessages = []string{
	"&6%plugin% &eis outdated! Recommended version is &6v%newversion%",
	"&ePlease download new version from BukkitDev:",
	"&b%url%",
}

// Version key layout
const (
	versionSeparator = "/"
	segmentSeparator = "."
	defaultBuild     = "000"
	emptySegment     = "00"
)

// Error messages
const (
	ErrMsgInvalidOptions   = "%w: %v"
	ErrMsgBuildRequest     = "%w: failed to build request: %v"
	ErrMsgRequestFailed    = "%w: request failed: %v"
	ErrMsgUnexpectedStatus = "%w: unexpected status %d"
	ErrMsgDecodeResponse   = "%w: failed to decode response: %v"
	ErrMsgMissingName      = "%w: latest file has no name"
)

// Log messages
const (
	LogMsgCheckFailed      = "Failed to check last version"
	LogMsgCheckCompleted   = "Update check completed"
	LogMsgOutdated         = "%s v%s is outdated! Recommended version is v%s"
	LogMsgDownloadURL      = "Download the new version"
	LogMsgCheckerStarted   = "Update checker started"
	LogMsgCheckerDisabled  = "Update checker disabled"
	LogMsgPublishFailed    = "Failed to publish update event"
	LogMsgEnqueueRejected  = "Update check could not be queued"
	LogMsgPeriodicStopped  = "Periodic update check stopped"
	LogMsgUnusableResponse = "Update response held no files"
)

// Metric result labels
const (
	resultUpdateAvailable = "update_available"
	resultUpToDate        = "up_to_date"
	resultEmpty           = "empty"
	resultError           = "error"
)
