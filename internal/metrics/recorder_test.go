package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRecorder struct {
	hookDurations map[string]int
	hookResults   map[string]map[ResultLabel]int
	bindings      int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{hookDurations: map[string]int{}, hookResults: map[string]map[ResultLabel]int{}}
}

func (t *testRecorder) ObserveHookDuration(integration, hook string, _ time.Duration) {
	t.hookDurations[integration+"/"+hook]++
}

func (t *testRecorder) IncHookResult(hook string, result ResultLabel) {
	m, ok := t.hookResults[hook]
	if !ok {
		m = map[ResultLabel]int{}
		t.hookResults[hook] = m
	}
	m[result]++
}

func (t *testRecorder) SetActiveBindings(n int) { t.bindings = n }

func TestRecorderImplementations(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)

	r := newTestRecorder()
	var rec Recorder = r
	rec.ObserveHookDuration("mdx", "config:setup", time.Millisecond)
	rec.IncHookResult("config:setup", ResultCanceled)
	rec.SetActiveBindings(3)

	assert.Equal(t, 1, r.hookDurations["mdx/config:setup"])
	assert.Equal(t, 1, r.hookResults["config:setup"][ResultCanceled])
	assert.Equal(t, 3, r.bindings)
}
