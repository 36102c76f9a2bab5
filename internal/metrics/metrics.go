package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "listing"

var (
	// RequestsTotal counts HTTP requests by route, method and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration observes request latency by route and method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// EventsPublishedTotal counts domain events published to the broker.
	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of domain events published.",
		},
		[]string{"event_type", "outcome"},
	)

	// RowsImportedTotal counts rows accepted by the bulk CSV import endpoints.
	RowsImportedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_imported_total",
			Help:      "Total number of listing rows imported via CSV.",
		},
		[]string{"kind"},
	)
)

// Register installs all collectors on the given registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		RequestDuration,
		EventsPublishedTotal,
		RowsImportedTotal,
	)
}

// ObserveRequest records a single completed HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
