package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Kit metric names
const (
	MetricNameItemOperations  = "itemstr_operations_total"
	MetricNameItemsRemoved    = "items_removed_total"
	MetricNameItemsDropped    = "items_dropped_total"
	MetricNameUpdateChecks    = "update_checks_total"
	MetricNameUpdateAvailable = "update_available"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Kit metric help text
const (
	HelpTextItemOperations  = "Item descriptor operations by operation and result"
	HelpTextItemsRemoved    = "Total number of items removed from players"
	HelpTextItemsDropped    = "Total number of items dropped because an inventory was full"
	HelpTextUpdateChecks    = "Update checks by result"
	HelpTextUpdateAvailable = "1 when a newer plugin version is published, otherwise 0"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOperation = "op"
	LabelResult    = "result"
	LabelMaterial  = "material"
)

// Result label values
const (
	ResultOK      = "ok"
	ResultMiss    = "miss"
	ResultError   = "error"
	ResultPartial = "partial"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
