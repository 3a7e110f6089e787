package metrics

import (
	"sync"
	"time"

	"github.com/tepidprint/tepid/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is the metrics interface used throughout the service.
type Recorder = core.Recorder

// Ensure Metrics implements Recorder interface at compile time
var _ Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Resolution Metrics
	ResolveTotal           *prometheus.CounterVec
	ResolveDuration        *prometheus.HistogramVec
	DirectoryQueriesTotal  *prometheus.CounterVec
	DirectoryQueryDuration *prometheus.HistogramVec
	WriteBackTotal         *prometheus.CounterVec

	// Authentication Metrics
	AuthLoginTotal *prometheus.CounterVec

	// Session Metrics
	SessionsActive           prometheus.Gauge
	SessionsCreatedTotal     prometheus.Counter
	SessionsExpiredTotal     prometheus.Counter
	SessionsInvalidatedTotal *prometheus.CounterVec

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// GetMetrics returns the registered Prometheus metrics, initializing them
// on first use.
func GetMetrics() *Metrics {
	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

// directoryBuckets covers the connect (500ms) and read (5s) timeouts.
var directoryBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

func initMetrics() *Metrics {
	return &Metrics{
		ResolveTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tepid_user_resolve_total",
				Help: "Total number of user resolutions",
			},
			[]string{"kind", "outcome"}, // kind: short_id, long_id, student_id; outcome: found, not_found, mismatch, error
		),
		ResolveDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tepid_user_resolve_duration_seconds",
				Help:    "Time taken to resolve a user",
				Buckets: directoryBuckets,
			},
			[]string{"kind"},
		),
		DirectoryQueriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tepid_directory_queries_total",
				Help: "Total number of directory operations",
			},
			[]string{"operation", "result"},
		),
		DirectoryQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tepid_directory_query_duration_seconds",
				Help:    "Directory operation duration",
				Buckets: directoryBuckets,
			},
			[]string{"operation"},
		),
		WriteBackTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tepid_user_write_back_total",
				Help: "Total number of merged records written back to the store",
			},
			[]string{"result"}, // written, unchanged, conflict, error
		),

		AuthLoginTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tepid_auth_login_total",
				Help: "Total number of login attempts",
			},
			[]string{"auth_source", "result"},
		),

		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tepid_sessions_active",
				Help: "Current number of unexpired sessions",
			},
		),
		SessionsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tepid_sessions_created_total",
				Help: "Total number of sessions started",
			},
		),
		SessionsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tepid_sessions_expired_total",
				Help: "Total number of sessions found expired on read",
			},
		),
		SessionsInvalidatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tepid_sessions_invalidated_total",
				Help: "Total number of sessions invalidated",
			},
			[]string{"reason"}, // logout, role_change, admin
		),

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
	}
}

func resultLabel(success bool) string {
	if success {
		return resultSuccess
	}
	return resultFailure
}

// RecordResolve records the outcome of a user resolution
func (m *Metrics) RecordResolve(kind, outcome string, duration time.Duration) {
	m.ResolveTotal.WithLabelValues(kind, outcome).Inc()
	m.ResolveDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordDirectoryQuery records a directory bind, search or modify
func (m *Metrics) RecordDirectoryQuery(operation string, success bool, duration time.Duration) {
	m.DirectoryQueriesTotal.WithLabelValues(operation, resultLabel(success)).Inc()
	m.DirectoryQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordWriteBack records what happened to a merged record
func (m *Metrics) RecordWriteBack(result string) {
	m.WriteBackTotal.WithLabelValues(result).Inc()
}

// RecordLogin records a login attempt
func (m *Metrics) RecordLogin(authSource string, success bool) {
	m.AuthLoginTotal.WithLabelValues(authSource, resultLabel(success)).Inc()
}

// RecordSessionStarted records a new session
func (m *Metrics) RecordSessionStarted() {
	m.SessionsCreatedTotal.Inc()
}

// RecordSessionExpired records a session found expired on read
func (m *Metrics) RecordSessionExpired() {
	m.SessionsExpiredTotal.Inc()
}

// RecordSessionInvalidated records explicitly removed sessions
func (m *Metrics) RecordSessionInvalidated(reason string, count int) {
	m.SessionsInvalidatedTotal.WithLabelValues(reason).Add(float64(count))
}

// SetActiveSessionsCount sets the active sessions gauge
func (m *Metrics) SetActiveSessionsCount(count int) {
	m.SessionsActive.Set(float64(count))
}
