// Package metrics records integration hook execution.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	runner := pipeline.NewRunner(p) // NoopRecorder
//
//	rec, err := metrics.NewPrometheusRecorder(registry)
//	if err != nil {
//	    return err
//	}
//	runner = pipeline.NewRunner(p, pipeline.WithRecorder(rec))
//
// PrometheusRecorder exposes:
//
//   - sitecore_hook_duration_seconds{integration,hook}
//   - sitecore_hook_results_total{hook,result}
//   - sitecore_active_bindings
//
// HTTPHandler serves a recorder's registry for drivers that run their own server.
package metrics
