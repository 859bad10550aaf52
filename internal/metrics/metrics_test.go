package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azdns/internal/provisioning"
)

func TestObservePhase(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObservePhase("root-zone", 2*time.Second, nil)
	m.ObservePhase("root-zone", time.Second, nil)
	m.ObservePhase("web-app", time.Second, errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.phaseTotal.WithLabelValues("root-zone", ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.phaseTotal.WithLabelValues("web-app", ResultError)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.phaseTotal.WithLabelValues("web-app", ResultSuccess)), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.phaseDuration))
}

func TestObserveRun(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveRun(ResultTimeout, 5*time.Minute, provisioning.CleanupFailed)

	assert.InDelta(t, 1, testutil.ToFloat64(m.runTotal.WithLabelValues(ResultTimeout)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cleanupTotal.WithLabelValues("cleanup-failed")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.runDuration))
}

func TestRegistryExposesCollectors(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveRun(ResultSuccess, time.Minute, provisioning.CleanedUp)

	expected := `
# HELP azdns_run_total Total number of runs by result
# TYPE azdns_run_total counter
azdns_run_total{result="success"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "azdns_run_total"))
}

func TestPush(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var path string
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		path, body = r.URL.Path, string(data)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	m := New()
	m.ObservePhase("root-zone", time.Second, nil)
	require.NoError(t, m.Push(context.Background(), server.URL, "run-1"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/metrics/job/azdns/run_id/run-1", path)
	assert.NotEmpty(t, body)
}

func TestPush_Error(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	err := New().Push(context.Background(), server.URL, "run-1")
	assert.Error(t, err)
}
