package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/skywhalehq/gomongolia-guide-admin-web/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Upstream fetch metrics
	UpstreamFetchDuration prometheus.HistogramVec
	UpstreamFetchErrors   prometheus.CounterVec

	// Dashboard data metrics
	RecordsFetchedGauge     prometheus.GaugeVec
	SnapshotFallbackCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Upstream fetch metrics
	UpstreamFetchDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_upstream_fetch_duration_seconds",
			Help:    "Duration of platform API fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"page"},
	)

	UpstreamFetchErrors = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_upstream_fetch_errors_total",
			Help: "Total number of failed platform API fetches",
		},
		[]string{"page"},
	)

	// Dashboard data metrics
	RecordsFetchedGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_records_fetched",
			Help: "Number of records returned by the last successful fetch",
		},
		[]string{"page"},
	)

	SnapshotFallbackCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_snapshot_fallbacks_total",
			Help: "Total number of responses served from the last-known-good snapshot",
		},
		[]string{"page"},
	)
}

// TrackUpstreamFetch returns a function that records the duration of a platform API fetch
func TrackUpstreamFetch(page string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		UpstreamFetchDuration.WithLabelValues(page).Observe(duration)
	}
}

// RecordFetchError increments the counter for failed fetches
func RecordFetchError(page string) {
	UpstreamFetchErrors.WithLabelValues(page).Inc()
}

// UpdateRecordsFetched updates the gauge for fetched record counts
func UpdateRecordsFetched(page string, count float64) {
	RecordsFetchedGauge.WithLabelValues(page).Set(count)
}

// RecordSnapshotFallback increments the counter for snapshot-served responses
func RecordSnapshotFallback(page string) {
	SnapshotFallbackCounter.WithLabelValues(page).Inc()
}
