package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/provisioning/compute"
	"github.com/imamik/azdns/internal/provisioning/destroy"
	"github.com/imamik/azdns/internal/provisioning/dns"
	"github.com/imamik/azdns/internal/provisioning/propagation"
	"github.com/imamik/azdns/internal/provisioning/webapp"
	"github.com/imamik/azdns/internal/util/naming"
)

// PhaseInit is the name reported when Init fails.
const PhaseInit = "init"

// Orchestrator drives a run through Init, Provisioning and Finalize.
type Orchestrator struct {
	infra    azure.InfrastructureManager
	cfg      *config.Config
	observer provisioning.Observer
	pauser   provisioning.Pauser
	tracer   trace.Tracer
	recorder provisioning.PhaseRecorder
	policy   *propagation.Policy
	render   dns.ListingRenderer
	hostOpts []compute.Option
	src      naming.Source
}

// Option is a functional option for configuring an Orchestrator.
type Option func(*Orchestrator)

// WithObserver sets the observer receiving run events.
func WithObserver(observer provisioning.Observer) Option {
	return func(o *Orchestrator) {
		o.observer = observer
	}
}

// WithPauser sets the pauser used after the root zone is created.
func WithPauser(pauser provisioning.Pauser) Option {
	return func(o *Orchestrator) {
		o.pauser = pauser
	}
}

// WithTracer sets the tracer used for run and phase spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *Orchestrator) {
		o.tracer = tracer
	}
}

// WithRecorder sets the recorder receiving phase outcomes.
func WithRecorder(recorder provisioning.PhaseRecorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

// WithPolicy overrides the propagation policy derived from config.
func WithPolicy(policy *propagation.Policy) Option {
	return func(o *Orchestrator) {
		o.policy = policy
	}
}

// WithListingRenderer sets how the record listing is displayed.
func WithListingRenderer(render dns.ListingRenderer) Option {
	return func(o *Orchestrator) {
		o.render = render
	}
}

// WithHostOptions passes options to the factory creating both hosts.
func WithHostOptions(opts ...compute.Option) Option {
	return func(o *Orchestrator) {
		o.hostOpts = append(o.hostOpts, opts...)
	}
}

// WithNameSource sets the randomness used for the run's names.
func WithNameSource(src naming.Source) Option {
	return func(o *Orchestrator) {
		o.src = src
	}
}

// New creates an Orchestrator.
func New(infra azure.InfrastructureManager, cfg *config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		infra:    infra,
		cfg:      cfg,
		observer: provisioning.NewNopObserver(),
		pauser:   provisioning.NoPause{},
		tracer:   noop.NewTracerProvider().Tracer("azdns"),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.policy == nil {
		o.policy = propagation.FromConfig(cfg, propagation.WithObserver(o.observer))
	}
	return o
}

// Phases returns the provisioning phases in execution order.
func (o *Orchestrator) Phases() []provisioning.Phase {
	return []provisioning.Phase{
		dns.NewRootZonePhase(),
		webapp.NewWebAppPhase(),
		dns.NewVerificationRecordsPhase(),
		webapp.NewCustomDomainPhase(),
		propagation.NewWaitPhase(o.policy),
		webapp.NewHostNameBindingPhase(o.policy),
		compute.NewPrimaryHostPhase(o.hostOpts...),
		dns.NewRecordListingPhase(o.render),
		dns.NewChildZonePhase(),
		compute.NewPartnerHostPhase(o.hostOpts...),
		dns.NewRemoveRecordPhase(),
		dns.NewDeleteChildZonePhase(),
	}
}

// Run executes one complete run. The returned Result is never nil.
func (o *Orchestrator) Run(ctx context.Context) *Result {
	start := time.Now()
	run := provisioning.NewRunContext(o.cfg.SubscriptionID, o.cfg.Location, o.src)
	observer := o.observer.WithFields(map[string]string{"run_id": run.ID})

	spanCtx, span := o.tracer.Start(ctx, "azdns.run", trace.WithAttributes(
		attribute.String("azdns.run_id", run.ID),
		attribute.String("azdns.resource_group", run.Group()),
		attribute.String("azdns.zone", run.Names.Zone),
	))
	defer span.End()

	pctx := provisioning.NewContext(spanCtx, o.cfg, run, o.infra)
	pctx.Observer = observer
	pctx.Pauser = o.pauser
	pctx.Tracer = o.tracer
	pctx.Recorder = o.recorder

	result := &Result{RunID: run.ID, Names: run.Names, State: pctx.State}

	observer.Printf("Starting run %s in resource group %s", run.ID, run.Group())
	if err := o.initialize(pctx); err != nil {
		result.setErr(err)
	} else if err := provisioning.RunPhases(pctx, o.Phases()); err != nil {
		result.setErr(err)
	}

	finalizer := destroy.NewFinalizer(o.infra, observer, pctx.Timeouts.Delete)
	result.Cleanup, result.CleanupErr = finalizer.Finalize(spanCtx, run.Group(), pctx.State.GroupCreated())
	result.Duration = time.Since(start)

	span.SetAttributes(attribute.String("azdns.cleanup", result.Cleanup.String()))
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.FailedPhase)
	}
	return result
}

// initialize resolves the subscription and creates the resource group.
func (o *Orchestrator) initialize(ctx *provisioning.Context) error {
	start := time.Now()
	provisioning.LogPhaseStart(ctx.Observer, PhaseInit)

	err := o.initSteps(ctx)
	if ctx.Recorder != nil {
		ctx.Recorder.ObservePhase(PhaseInit, time.Since(start), err)
	}
	if err != nil {
		var pe *provisioning.ProvisionError
		if !errors.As(err, &pe) {
			pe = &provisioning.ProvisionError{Err: err}
		}
		pe.Phase = PhaseInit
		provisioning.LogPhaseFailed(ctx.Observer, PhaseInit, pe.Err)
		return pe
	}

	provisioning.LogPhaseComplete(ctx.Observer, PhaseInit, time.Since(start))
	return nil
}

func (o *Orchestrator) initSteps(ctx *provisioning.Context) error {
	sub, err := ctx.Infra.GetSubscription(ctx, ctx.Run.SubscriptionID)
	if err != nil {
		return provisioning.NewProvisionError(ctx.Run.SubscriptionID, fmt.Errorf("failed to get subscription: %w", err))
	}
	ctx.State.Subscription = sub
	ctx.Observer.Printf("[%s] Using subscription %s (%s)", PhaseInit, sub.DisplayName, sub.SubscriptionID)

	group := ctx.Group()
	provisioning.LogResourceCreating(ctx.Observer, PhaseInit, "resource group", group)
	rg, err := ctx.Infra.CreateResourceGroup(ctx, group, ctx.Run.Location, ctx.Run.Tags())
	if err != nil {
		return provisioning.NewProvisionError(group, fmt.Errorf("failed to create resource group: %w", err))
	}
	ctx.State.ResourceGroup = rg
	provisioning.LogResourceCreated(ctx.Observer, PhaseInit, "resource group", rg.Name, rg.ID)
	return nil
}
