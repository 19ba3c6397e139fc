package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Item descriptor metrics
var (
	ItemOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemOperations,
			Help: HelpTextItemOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	ItemsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRemoved,
			Help: HelpTextItemsRemoved,
		},
	)

	ItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDropped,
			Help: HelpTextItemsDropped,
		},
		[]string{LabelMaterial},
	)
)

// Update checker metrics
var (
	UpdateChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpdateChecks,
			Help: HelpTextUpdateChecks,
		},
		[]string{LabelResult},
	)

	UpdateAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameUpdateAvailable,
			Help: HelpTextUpdateAvailable,
		},
	)
)

// RecordItemOperation counts one item descriptor operation
func RecordItemOperation(op string, ok bool) {
	result := ResultOK
	if !ok {
		result = ResultMiss
	}
	ItemOperations.WithLabelValues(op, result).Inc()
}
