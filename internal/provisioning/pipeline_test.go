package provisioning

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure/fakes"
)

func phaseFunc(name string, fn func(*Context) error) Phase {
	return PhaseFunc{PhaseName: name, Fn: fn}
}

type recordedPhase struct {
	name string
	err  error
}

type mockRecorder struct {
	mu     sync.Mutex
	phases []recordedPhase
}

func (r *mockRecorder) ObservePhase(phase string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, recordedPhase{name: phase, err: err})
}

func newTestContext(t *testing.T) (*Context, *MockObserver) {
	t.Helper()
	cfg := &config.Config{Timeouts: config.DefaultTimeouts()}
	run := NewRunContext("sub-1", "eastus", func(int) int { return 7421 })
	ctx := NewContext(context.Background(), cfg, run, &fakes.MockClient{})
	observer := NewMockObserver()
	ctx.Observer = observer
	return ctx, observer
}

func TestRunPhases_Success(t *testing.T) {
	t.Parallel()
	ctx, observer := newTestContext(t)
	var executed []string

	phases := []Phase{
		phaseFunc("root-zone", func(*Context) error { executed = append(executed, "root-zone"); return nil }),
		phaseFunc("web-app", func(*Context) error { executed = append(executed, "web-app"); return nil }),
		phaseFunc("primary-host", func(*Context) error { executed = append(executed, "primary-host"); return nil }),
	}

	require.NoError(t, RunPhases(ctx, phases))
	assert.Equal(t, []string{"root-zone", "web-app", "primary-host"}, executed)
	assert.Len(t, observer.eventsOf(EventPhaseStarted), 3)
	assert.Len(t, observer.eventsOf(EventPhaseCompleted), 3)
	assert.Empty(t, observer.eventsOf(EventPhaseFailed))
}

func TestRunPhases_StopsOnError(t *testing.T) {
	t.Parallel()
	ctx, observer := newTestContext(t)
	var executed []string
	boom := errors.New("boom")

	phases := []Phase{
		phaseFunc("root-zone", func(*Context) error { executed = append(executed, "root-zone"); return nil }),
		phaseFunc("web-app", func(*Context) error { executed = append(executed, "web-app"); return boom }),
		phaseFunc("primary-host", func(*Context) error { executed = append(executed, "primary-host"); return nil }),
	}

	err := RunPhases(ctx, phases)
	require.Error(t, err)
	assert.Equal(t, []string{"root-zone", "web-app"}, executed)
	assert.ErrorIs(t, err, boom)

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "web-app", pe.Phase)
	assert.Equal(t, "web-app phase failed: boom", err.Error())

	failed := observer.eventsOf(EventPhaseFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "web-app", failed[0].Phase)
}

func TestRunPhases_FillsPhaseOnProvisionError(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	cause := errors.New("conflict")

	err := RunPhases(ctx, []Phase{
		phaseFunc("child-zone", func(*Context) error {
			return NewProvisionError("partners.contoso7421.com", cause)
		}),
	})

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "child-zone", pe.Phase)
	assert.Equal(t, "partners.contoso7421.com", pe.Resource)
	assert.Equal(t, "child-zone phase failed: partners.contoso7421.com: conflict", err.Error())
}

func TestRunPhases_WrapsPropagationTimeout(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	timeout := &PropagationTimeoutError{HostName: "contoso7421.com", Attempts: 3, Err: errors.New("not verified")}

	err := RunPhases(ctx, []Phase{
		phaseFunc("host-name-binding", func(*Context) error { return timeout }),
	})

	var pe *ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "host-name-binding", pe.Phase)
	assert.Equal(t, "contoso7421.com", pe.Resource)

	var pte *PropagationTimeoutError
	require.ErrorAs(t, err, &pte)
	assert.Equal(t, 3, pte.Attempts)
}

func TestRunPhases_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx = ctx.WithContext(cctx)

	called := false
	err := RunPhases(ctx, []Phase{
		phaseFunc("root-zone", func(*Context) error { called = true; return nil }),
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunPhases_Empty(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	require.NoError(t, RunPhases(ctx, nil))
}

func TestRunPhases_RecordsEveryExecutedPhase(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	recorder := &mockRecorder{}
	ctx.Recorder = recorder
	boom := errors.New("boom")

	_ = RunPhases(ctx, []Phase{
		phaseFunc("a", func(*Context) error { return nil }),
		phaseFunc("b", func(*Context) error { return boom }),
		phaseFunc("c", func(*Context) error { return nil }),
	})

	require.Len(t, recorder.phases, 2)
	assert.Equal(t, "a", recorder.phases[0].name)
	require.NoError(t, recorder.phases[0].err)
	assert.Equal(t, "b", recorder.phases[1].name)
	assert.ErrorIs(t, recorder.phases[1].err, boom)
}

func TestRunPhases_StartsSpanPerPhase(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext(t)
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx.Tracer = tp.Tracer("test")

	_ = RunPhases(ctx, []Phase{
		phaseFunc("root-zone", func(*Context) error { return nil }),
		phaseFunc("web-app", func(*Context) error { return errors.New("boom") }),
	})

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "phase root-zone", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, "phase web-app", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestPhaseNames(t *testing.T) {
	t.Parallel()
	names := PhaseNames([]Phase{
		phaseFunc("a", nil),
		phaseFunc("b", nil),
	})
	assert.Equal(t, []string{"a", "b"}, names)
}
