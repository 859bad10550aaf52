package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/imamik/azdns/internal/provisioning"
)

const (
	namespace = "azdns"

	// JobName is the Pushgateway job label.
	JobName = "azdns"
)

// Result labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultTimeout = "timeout"
)

// Metrics holds the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	phaseTotal    *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	runTotal      *prometheus.CounterVec
	runDuration   prometheus.Histogram
	cleanupTotal  *prometheus.CounterVec
}

var _ provisioning.PhaseRecorder = (*Metrics)(nil)

// New creates metrics registered in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		phaseTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "phase",
				Name:      "total",
				Help:      "Total number of executed phases by result",
			},
			[]string{"phase", "result"},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "phase",
				Name:      "duration_seconds",
				Help:      "Duration of provisioning phases in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12), // 500ms to ~17min
			},
			[]string{"phase"},
		),
		runTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "run",
				Name:      "total",
				Help:      "Total number of runs by result",
			},
			[]string{"result"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "run",
				Name:      "duration_seconds",
				Help:      "Duration of complete runs including cleanup in seconds",
				Buckets:   prometheus.ExponentialBuckets(30, 2, 8), // 30s to ~64min
			},
		),
		cleanupTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cleanup",
				Name:      "total",
				Help:      "Total number of finalize outcomes by status",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(m.phaseTotal, m.phaseDuration, m.runTotal, m.runDuration, m.cleanupTotal)
	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObservePhase implements provisioning.PhaseRecorder.
func (m *Metrics) ObservePhase(phase string, duration time.Duration, err error) {
	m.phaseTotal.WithLabelValues(phase, resultOf(err)).Inc()
	m.phaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// ObserveRun records the outcome of a complete run.
func (m *Metrics) ObserveRun(result string, duration time.Duration, cleanup provisioning.CleanupStatus) {
	m.runTotal.WithLabelValues(result).Inc()
	m.runDuration.Observe(duration.Seconds())
	m.cleanupTotal.WithLabelValues(cleanup.String()).Inc()
}

// Push sends every metric to the Pushgateway at url, grouped by run ID.
func (m *Metrics) Push(ctx context.Context, url, runID string) error {
	err := push.New(url, JobName).
		Gatherer(m.registry).
		Grouping("run_id", runID).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}

func resultOf(err error) string {
	if err == nil {
		return ResultSuccess
	}
	return ResultError
}
