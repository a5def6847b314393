package pipeline

import (
	"context"
	stdErrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecore/internal/errors"
	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/metrics"
)

type fakeSite struct{}

func (fakeSite) Site() string {
	return "https://example.com"
}

func (fakeSite) OutDir() string {
	return "dist"
}

func (fakeSite) AbsoluteURL(route string) string {
	return "https://example.com" + route
}

type countingRecorder struct {
	mu        sync.Mutex
	durations int
	results   map[string]metrics.ResultLabel
	bindings  int
}

func (c *countingRecorder) ObserveHookDuration(string, string, time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.durations++
}

func (c *countingRecorder) IncHookResult(hook string, result metrics.ResultLabel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.results == nil {
		c.results = map[string]metrics.ResultLabel{}
	}
	c.results[hook] = result
}

func (c *countingRecorder) SetActiveBindings(n int) { c.bindings = n }

// tracer records the order in which hooks run.
type tracer struct {
	calls []string
}

func (tr *tracer) hook(name string, err error) integration.HookFunc {
	return func(context.Context, *integration.HookContext) error {
		tr.calls = append(tr.calls, name)
		return err
	}
}

func TestRunner_RunsCategoryInOrder(t *testing.T) {
	tr := &tracer{}
	p, err := Register([]integration.Descriptor{
		integration.New("a", map[integration.HookName]integration.HookFunc{
			integration.HookConfigSetup: tr.hook("a:setup", nil),
			integration.HookBuildDone:   tr.hook("a:done", nil),
		}),
		integration.New("b", map[integration.HookName]integration.HookFunc{
			integration.HookConfigSetup: tr.hook("b:setup", nil),
		}),
	})
	require.NoError(t, err)

	rec := &countingRecorder{}
	r := NewRunner(p, WithRecorder(rec))
	hc := integration.NewHookContext(fakeSite{}, nil)

	require.NoError(t, r.Run(context.Background(), integration.HookConfigSetup, hc))
	assert.Equal(t, []string{"a:setup", "b:setup"}, tr.calls)
	assert.Equal(t, 2, rec.durations)
	assert.Equal(t, metrics.ResultSuccess, rec.results["config:setup"])
	assert.Equal(t, 3, rec.bindings)

	require.NoError(t, r.Run(context.Background(), integration.HookRouteGenerated, hc))
	assert.Len(t, tr.calls, 2, "no bindings for route:generated")
}

func TestRunner_RunAll(t *testing.T) {
	tr := &tracer{}
	p, err := Register([]integration.Descriptor{
		integration.New("a", map[integration.HookName]integration.HookFunc{
			integration.HookBuildDone:   tr.hook("a:done", nil),
			integration.HookConfigSetup: tr.hook("a:setup", nil),
		}),
		integration.New("b", map[integration.HookName]integration.HookFunc{
			integration.HookContentDiscovered: tr.hook("b:content", nil),
		}),
	})
	require.NoError(t, err)

	require.NoError(t, NewRunner(p).RunAll(context.Background(), integration.NewHookContext(fakeSite{}, nil)))
	assert.Equal(t, []string{"a:setup", "b:content", "a:done"}, tr.calls)
}

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	tr := &tracer{}
	boom := stdErrors.New("boom")
	p, err := Register([]integration.Descriptor{
		integration.New("a", map[integration.HookName]integration.HookFunc{integration.HookBuildStart: tr.hook("a", nil)}),
		integration.New("b", map[integration.HookName]integration.HookFunc{integration.HookBuildStart: tr.hook("b", boom)}),
		integration.New("c", map[integration.HookName]integration.HookFunc{integration.HookBuildStart: tr.hook("c", nil)}),
	})
	require.NoError(t, err)

	rec := &countingRecorder{}
	err = NewRunner(p, WithRecorder(rec)).Run(context.Background(), integration.HookBuildStart, integration.NewHookContext(fakeSite{}, nil))
	require.Error(t, err)

	var he *HookError
	require.True(t, stdErrors.As(err, &he))
	assert.Equal(t, "b", he.Integration)
	assert.Equal(t, integration.HookBuildStart, he.Hook)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, errors.CategoryIntegration, errors.GetCategory(err))
	assert.Equal(t, "integration b failed during build:start: boom", err.Error())

	assert.Equal(t, []string{"a", "b"}, tr.calls)
	assert.Equal(t, metrics.ResultFailed, rec.results["build:start"])
}

func TestRunner_ChecksContextBetweenHooks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tr := &tracer{}
	p, err := Register([]integration.Descriptor{
		integration.New("a", map[integration.HookName]integration.HookFunc{
			integration.HookConfigDone: func(context.Context, *integration.HookContext) error {
				tr.calls = append(tr.calls, "a")
				cancel()
				return nil
			},
		}),
		integration.New("b", map[integration.HookName]integration.HookFunc{integration.HookConfigDone: tr.hook("b", nil)}),
	})
	require.NoError(t, err)

	rec := &countingRecorder{}
	err = NewRunner(p, WithRecorder(rec)).Run(ctx, integration.HookConfigDone, integration.NewHookContext(fakeSite{}, nil))
	require.ErrorIs(t, err, context.Canceled)

	var he *HookError
	require.True(t, stdErrors.As(err, &he))
	assert.Equal(t, "b", he.Integration)
	assert.Equal(t, []string{"a"}, tr.calls)
	assert.Equal(t, metrics.ResultCanceled, rec.results["config:done"])
}

func TestRunner_HooksShareContext(t *testing.T) {
	p, err := Register([]integration.Descriptor{
		integration.New("writer", map[integration.HookName]integration.HookFunc{
			integration.HookConfigSetup: func(_ context.Context, hc *integration.HookContext) error {
				hc.AddPageExtension(".mdx")
				hc.SetValue("writer.ready", true)
				return nil
			},
		}),
		integration.New("reader", map[integration.HookName]integration.HookFunc{
			integration.HookConfigDone: func(_ context.Context, hc *integration.HookContext) error {
				if !hc.GetBool("writer.ready") {
					return stdErrors.New("writer did not run")
				}
				return nil
			},
		}),
	})
	require.NoError(t, err)

	hc := integration.NewHookContext(fakeSite{}, nil)
	require.NoError(t, NewRunner(p).RunAll(context.Background(), hc))
	assert.True(t, hc.IsPage("docs/intro.mdx"))
}

func TestRunner_NilPipeline(t *testing.T) {
	rec := &countingRecorder{bindings: -1}
	r := NewRunner(nil, WithRecorder(rec))
	hc := integration.NewHookContext(fakeSite{}, nil)

	require.NoError(t, r.Run(context.Background(), integration.HookConfigSetup, hc))
	require.NoError(t, r.RunAll(context.Background(), hc))
	assert.Equal(t, 0, rec.bindings)
	assert.Zero(t, rec.durations)
}
