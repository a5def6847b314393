package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecore"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry       *prom.Registry
	hookDuration   *prom.HistogramVec
	hookResults    *prom.CounterVec
	activeBindings prom.Gauge
}

// NewPrometheusRecorder constructs the hook metrics and registers them with reg.
// A nil reg gets a fresh private registry. Registering twice on the same registry
// returns the registration error.
func NewPrometheusRecorder(reg *prom.Registry) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		hookDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "hook_duration_seconds",
			Help:      "Duration of individual integration hook invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"integration", "hook"}),
		hookResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "hook_results_total",
			Help:      "Hook category runs by outcome",
		}, []string{"hook", "result"}),
		activeBindings: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "active_bindings",
			Help:      "Hook bindings in the most recently registered pipeline",
		}),
	}
	for _, c := range []prom.Collector{pr.hookDuration, pr.hookResults, pr.activeBindings} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

// Registry returns the registry the metrics were registered with.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.registry
}

func (p *PrometheusRecorder) ObserveHookDuration(integration, hook string, d time.Duration) {
	if p == nil || p.hookDuration == nil {
		return
	}
	p.hookDuration.WithLabelValues(integration, hook).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHookResult(hook string, result ResultLabel) {
	if p == nil || p.hookResults == nil {
		return
	}
	p.hookResults.WithLabelValues(hook, string(result)).Inc()
}

func (p *PrometheusRecorder) SetActiveBindings(n int) {
	if p == nil || p.activeBindings == nil {
		return
	}
	p.activeBindings.Set(float64(n))
}
