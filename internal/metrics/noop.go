package metrics

import "time"

// NoopMetrics is a no-operation implementation of Recorder
// All methods are empty and do nothing, providing zero overhead when metrics are disabled
type NoopMetrics struct{}

// Ensure NoopMetrics implements Recorder interface at compile time
var _ Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

// Resolution - noop implementations
func (n *NoopMetrics) RecordResolve(kind, outcome string, duration time.Duration) {
}

func (n *NoopMetrics) RecordDirectoryQuery(
	operation string,
	success bool,
	duration time.Duration,
) {
}

func (n *NoopMetrics) RecordWriteBack(result string) {
}

// Authentication - noop implementations
func (n *NoopMetrics) RecordLogin(authSource string, success bool) {
}

// Session Management - noop implementations
func (n *NoopMetrics) RecordSessionStarted() {
}

func (n *NoopMetrics) RecordSessionExpired() {
}

func (n *NoopMetrics) RecordSessionInvalidated(reason string, count int) {
}

func (n *NoopMetrics) SetActiveSessionsCount(count int) {
}
