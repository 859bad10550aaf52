package compute

import (
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/provisioning/dns"
)

// Phase names.
const (
	PhasePrimaryHost = "primary-host"
	PhasePartnerHost = "partner-host"
)

// HostPhase creates a host and points the apex of a zone at its address.
type HostPhase struct {
	name    string
	factory func(ctx *provisioning.Context) *Factory
	host    func(ctx *provisioning.Context) HostNames
	zone    func(ctx *provisioning.Context) (string, error)
	store   func(state *provisioning.State, host *provisioning.Host, record *azure.RecordSet)
}

// NewPrimaryHostPhase creates the first host and its A record in the root zone.
func NewPrimaryHostPhase(opts ...Option) *HostPhase {
	return &HostPhase{
		name:    PhasePrimaryHost,
		factory: factoryFor(opts),
		host:    func(ctx *provisioning.Context) HostNames { return PrimaryHostNames(ctx.Run.Names) },
		zone: func(ctx *provisioning.Context) (string, error) {
			if ctx.State.RootZone == nil {
				return "", fmt.Errorf("root zone not created")
			}
			return ctx.State.RootZone.Name, nil
		},
		store: func(state *provisioning.State, host *provisioning.Host, record *azure.RecordSet) {
			state.PrimaryHost, state.PrimaryRecord = host, record
		},
	}
}

// NewPartnerHostPhase creates the second host and its A record in the child zone.
func NewPartnerHostPhase(opts ...Option) *HostPhase {
	return &HostPhase{
		name:    PhasePartnerHost,
		factory: factoryFor(opts),
		host:    func(ctx *provisioning.Context) HostNames { return PartnerHostNames(ctx.Run.Names) },
		zone: func(ctx *provisioning.Context) (string, error) {
			if ctx.State.ChildZone == nil {
				return "", fmt.Errorf("child zone not created")
			}
			return ctx.State.ChildZone.Name, nil
		},
		store: func(state *provisioning.State, host *provisioning.Host, record *azure.RecordSet) {
			state.PartnerHost, state.PartnerRecord = host, record
		},
	}
}

func factoryFor(opts []Option) func(ctx *provisioning.Context) *Factory {
	return func(ctx *provisioning.Context) *Factory {
		all := append([]Option{WithObserver(ctx.Observer)}, opts...)
		return NewFactory(ctx.Infra, ctx.Run.Location, all...)
	}
}

// Name implements the provisioning.Phase interface.
func (p *HostPhase) Name() string {
	return p.name
}

// Provision implements the provisioning.Phase interface.
func (p *HostPhase) Provision(ctx *provisioning.Context) error {
	zone, err := p.zone(ctx)
	if err != nil {
		return provisioning.NewProvisionError(p.name, err)
	}

	host, err := p.factory(ctx).CreateHost(ctx, ctx.Group(), p.host(ctx))
	if err != nil {
		return err
	}

	record, err := dns.CreateAddressRecord(ctx, p.name, zone, host.IP())
	if err != nil {
		return err
	}

	p.store(ctx.State, host, record)
	ctx.Observer.Printf("[%s] %s -> %s", p.name, zone, host.IP())
	return nil
}
