package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Resolution
	RecordResolve(kind, outcome string, duration time.Duration)
	RecordDirectoryQuery(operation string, success bool, duration time.Duration)
	RecordWriteBack(result string)

	// Authentication
	RecordLogin(authSource string, success bool)

	// Session Management
	RecordSessionStarted()
	RecordSessionExpired()
	RecordSessionInvalidated(reason string, count int)
	SetActiveSessionsCount(count int)
}
