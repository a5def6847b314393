package metrics

import "time"

// ResultLabel enumerates hook result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for integration hook execution. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveHookDuration(integration, hook string, d time.Duration)
	IncHookResult(hook string, result ResultLabel)
	SetActiveBindings(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveHookDuration(string, string, time.Duration) {}
func (NoopRecorder) IncHookResult(string, ResultLabel)                 {}
func (NoopRecorder) SetActiveBindings(int)                             {}
