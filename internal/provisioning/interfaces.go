package provisioning

import (
	"context"
	"time"
)

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// PhaseFunc adapts a function to the Phase interface.
type PhaseFunc struct {
	PhaseName string
	Fn        func(*Context) error
}

// Name implements Phase.
func (p PhaseFunc) Name() string { return p.PhaseName }

// Provision implements Phase.
func (p PhaseFunc) Provision(ctx *Context) error { return p.Fn(ctx) }

// Pauser blocks until the operator confirms a manual step, or returns
// immediately when the run is not interactive.
type Pauser interface {
	Pause(ctx context.Context, message string) error
}

// NoPause is a Pauser that never waits.
type NoPause struct{}

// Pause implements Pauser.
func (NoPause) Pause(context.Context, string) error { return nil }

// PhaseRecorder receives the outcome of each phase, e.g. for metrics.
type PhaseRecorder interface {
	ObservePhase(phase string, duration time.Duration, err error)
}
