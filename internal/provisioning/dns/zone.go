package dns

import (
	"fmt"
	"strings"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// Phase names.
const (
	PhaseRootZone            = "root-zone"
	PhaseVerificationRecords = "verification-records"
	PhaseRecordListing       = "record-listing"
	PhaseChildZone           = "child-zone"
	PhaseRemoveRecord        = "remove-record"
	PhaseDeleteChildZone     = "delete-child-zone"
)

func createZone(ctx *provisioning.Context, phase, name string) (*azure.Zone, error) {
	provisioning.LogResourceCreating(ctx.Observer, phase, "DNS zone", name)

	zone, err := ctx.Infra.CreateZone(ctx, ctx.Group(), name)
	if err != nil {
		return nil, provisioning.NewProvisionError(name, fmt.Errorf("failed to create DNS zone: %w", err))
	}

	provisioning.LogResourceCreated(ctx.Observer, phase, "DNS zone", zone.Name, zone.ID,
		map[string]string{"name_servers": strings.Join(zone.NameServers, ",")})
	return zone, nil
}

// RootZonePhase creates the run's root zone and reports its name servers.
type RootZonePhase struct{}

// NewRootZonePhase creates the root zone phase.
func NewRootZonePhase() *RootZonePhase {
	return &RootZonePhase{}
}

// Name implements the provisioning.Phase interface.
func (p *RootZonePhase) Name() string {
	return PhaseRootZone
}

// Provision implements the provisioning.Phase interface.
func (p *RootZonePhase) Provision(ctx *provisioning.Context) error {
	zone, err := createZone(ctx, PhaseRootZone, ctx.Run.Names.Zone)
	if err != nil {
		return err
	}
	ctx.State.RootZone = zone

	ctx.Observer.Printf("[%s] Configure your registrar for %s with these name servers:", PhaseRootZone, zone.Name)
	for _, ns := range zone.NameServers {
		ctx.Observer.Printf("[%s]   %s", PhaseRootZone, ns)
	}

	return ctx.Pauser.Pause(ctx, fmt.Sprintf("Point %s at the name servers above, then continue", zone.Name))
}

// ChildZonePhase creates the delegated partner zone and the NS record
// delegating to it from the root zone.
type ChildZonePhase struct{}

// NewChildZonePhase creates the child zone phase.
func NewChildZonePhase() *ChildZonePhase {
	return &ChildZonePhase{}
}

// Name implements the provisioning.Phase interface.
func (p *ChildZonePhase) Name() string {
	return PhaseChildZone
}

// Provision implements the provisioning.Phase interface.
func (p *ChildZonePhase) Provision(ctx *provisioning.Context) error {
	if ctx.State.RootZone == nil {
		return provisioning.NewProvisionError(ctx.Run.ChildZone(), fmt.Errorf("root zone not created"))
	}

	child, err := createZone(ctx, PhaseChildZone, ctx.Run.ChildZone())
	if err != nil {
		return err
	}
	ctx.State.ChildZone = child

	delegation, err := createRecordSet(ctx, PhaseChildZone, ctx.State.RootZone.Name, azure.RecordSetSpec{
		Name:      naming.DelegationRecord,
		Type:      azure.RecordTypeNS,
		TTL:       TTL,
		NSRecords: child.NameServers,
	})
	if err != nil {
		return err
	}
	ctx.State.Delegation = delegation
	return nil
}

// DeleteChildZonePhase deletes the child zone.
type DeleteChildZonePhase struct{}

// NewDeleteChildZonePhase creates the child zone delete phase.
func NewDeleteChildZonePhase() *DeleteChildZonePhase {
	return &DeleteChildZonePhase{}
}

// Name implements the provisioning.Phase interface.
func (p *DeleteChildZonePhase) Name() string {
	return PhaseDeleteChildZone
}

// Provision implements the provisioning.Phase interface.
func (p *DeleteChildZonePhase) Provision(ctx *provisioning.Context) error {
	name := ctx.Run.ChildZone()
	provisioning.LogResourceDeleting(ctx.Observer, PhaseDeleteChildZone, "DNS zone", name)

	if err := ctx.Infra.DeleteZone(ctx, ctx.Group(), name); err != nil {
		return provisioning.NewProvisionError(name, fmt.Errorf("failed to delete DNS zone: %w", err))
	}

	ctx.State.ChildZoneDeleted = true
	provisioning.LogResourceDeleted(ctx.Observer, PhaseDeleteChildZone, "DNS zone", name)
	return nil
}
