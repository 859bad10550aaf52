package provisioning

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Run      *RunContext
	State    *State
	Infra    azure.InfrastructureManager
	Observer Observer
	Pauser   Pauser
	Tracer   trace.Tracer
	Recorder PhaseRecorder
	Timeouts *config.Timeouts
}

// NewContext creates a new provisioning context with a silent observer,
// no pausing and a no-op tracer. Callers replace these as needed.
func NewContext(ctx context.Context, cfg *config.Config, run *RunContext, infra azure.InfrastructureManager) *Context {
	timeouts := cfg.Timeouts
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Run:      run,
		State:    NewState(),
		Infra:    infra,
		Observer: NewNopObserver(),
		Pauser:   NoPause{},
		Tracer:   noop.NewTracerProvider().Tracer("azdns"),
		Timeouts: timeouts,
	}
}

// WithContext returns a shallow copy bound to ctx. State is shared.
func (c *Context) WithContext(ctx context.Context) *Context {
	cp := *c
	cp.Context = ctx
	return &cp
}

// Group returns the run's resource group name.
func (c *Context) Group() string {
	return c.Run.Group()
}
