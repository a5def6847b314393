package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	pr.ObserveHookDuration("mdx", "config:setup", 15*time.Millisecond)
	pr.IncHookResult("config:setup", ResultSuccess)
	pr.IncHookResult("config:setup", ResultSuccess)
	pr.IncHookResult("build:done", ResultFailed)
	pr.SetActiveBindings(4)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.hookResults.WithLabelValues("config:setup", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.hookResults.WithLabelValues("build:done", "failed")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(pr.activeBindings), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(pr.hookDuration))

	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 3)
}

func TestPrometheusRecorder_DoubleRegistration(t *testing.T) {
	reg := prom.NewRegistry()
	_, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg)
	assert.Error(t, err)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveHookDuration("mdx", "config:setup", time.Millisecond)
		pr.IncHookResult("config:setup", ResultSuccess)
		pr.SetActiveBindings(1)
	})
	assert.Nil(t, pr.Registry())
}

func TestHTTPHandler(t *testing.T) {
	pr, err := NewPrometheusRecorder(nil)
	require.NoError(t, err)
	pr.SetActiveBindings(2)

	rec := httptest.NewRecorder()
	HTTPHandler(pr).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "sitecore_active_bindings 2"))

	rec = httptest.NewRecorder()
	HTTPHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
