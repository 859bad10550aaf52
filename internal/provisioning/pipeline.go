package provisioning

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RunPhases executes all provisioning phases sequentially and stops at the
// first failure. The returned error is always a *ProvisionError naming the
// failed phase; later phases are never invoked.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return phaseError(phase.Name(), err)
		}

		phaseStart := time.Now()
		name := phase.Name()
		ctx.Observer.Progress(name, i+1, len(phases))
		LogPhaseStart(ctx.Observer, name)

		err := runPhase(ctx, phase)
		duration := time.Since(phaseStart)
		if ctx.Recorder != nil {
			ctx.Recorder.ObservePhase(name, duration, err)
		}

		if err != nil {
			pe := phaseError(name, err)
			LogPhaseFailed(ctx.Observer, name, pe.Err)
			return pe
		}

		LogPhaseComplete(ctx.Observer, name, duration)
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

func runPhase(ctx *Context, phase Phase) error {
	if ctx.Tracer == nil {
		return phase.Provision(ctx)
	}

	spanCtx, span := ctx.Tracer.Start(ctx.Context, "phase "+phase.Name(),
		trace.WithAttributes(
			attribute.String("azdns.phase", phase.Name()),
			attribute.String("azdns.run_id", runID(ctx)),
		))
	defer span.End()

	err := phase.Provision(ctx.WithContext(spanCtx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// phaseError returns err as a *ProvisionError attributed to phase.
func phaseError(phase string, err error) *ProvisionError {
	if direct, ok := err.(*ProvisionError); ok {
		if direct.Phase == "" {
			direct.Phase = phase
		}
		return direct
	}

	pe := &ProvisionError{Phase: phase, Err: err}
	var inner *ProvisionError
	if errors.As(err, &inner) {
		pe.Resource = inner.Resource
	}
	return pe
}

func runID(ctx *Context) string {
	if ctx.Run == nil {
		return ""
	}
	return ctx.Run.ID
}

// PhaseNames returns the names of phases in order.
func PhaseNames(phases []Phase) []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name()
	}
	return names
}
