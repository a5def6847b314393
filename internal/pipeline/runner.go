package pipeline

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/logfields"
	"git.home.luguber.info/inful/sitecore/internal/metrics"
)

// Runner invokes the bindings of an ActivePipeline. It holds no mutable state and may be
// shared; callers serialize hook categories themselves.
type Runner struct {
	pipeline *ActivePipeline
	logger   *slog.Logger
	recorder metrics.Recorder
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-hook debug output.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec metrics.Recorder) RunnerOption {
	return func(r *Runner) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// NewRunner creates a runner for p. A nil p runs as a pipeline with no bindings.
func NewRunner(p *ActivePipeline, opts ...RunnerOption) *Runner {
	if p == nil {
		p = &ActivePipeline{}
	}
	r := &Runner{
		pipeline: p,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.recorder.SetActiveBindings(p.Len())
	return r
}

// Run invokes every binding of hook in order. The context is checked before each
// binding; the first failure stops the run and is returned as a *HookError.
func (r *Runner) Run(ctx context.Context, hook integration.HookName, hc *integration.HookContext) error {
	bindings := r.pipeline.byHook[hook]
	for _, b := range bindings {
		if err := ctx.Err(); err != nil {
			r.recorder.IncHookResult(string(hook), metrics.ResultCanceled)
			return &HookError{Integration: b.Integration, Hook: hook, Err: err}
		}

		start := time.Now()
		err := b.Fn(ctx, hc)
		elapsed := time.Since(start)
		r.recorder.ObserveHookDuration(b.Integration, string(hook), elapsed)

		if err != nil {
			r.logger.Error("Integration hook failed",
				logfields.Integration(b.Integration),
				logfields.Hook(string(hook)),
				logfields.Error(err))
			r.recorder.IncHookResult(string(hook), metrics.ResultFailed)
			return &HookError{Integration: b.Integration, Hook: hook, Err: err}
		}
		r.logger.Debug("Integration hook completed",
			logfields.Integration(b.Integration),
			logfields.Hook(string(hook)),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	}
	if len(bindings) > 0 {
		r.recorder.IncHookResult(string(hook), metrics.ResultSuccess)
	}
	return nil
}

// RunAll runs every hook category in vocabulary order, stopping at the first failure.
func (r *Runner) RunAll(ctx context.Context, hc *integration.HookContext) error {
	for _, h := range integration.Hooks() {
		if err := r.Run(ctx, h, hc); err != nil {
			return err
		}
	}
	return nil
}
