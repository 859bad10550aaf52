package dns

import (
	"fmt"
	"strings"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// ListingRenderer displays a record listing, e.g. as a console table.
type ListingRenderer func(zone string, listing *provisioning.RecordListing)

// RecordListingPhase enumerates the CNAME and A record sets of the root zone.
type RecordListingPhase struct {
	render ListingRenderer
}

// NewRecordListingPhase creates the listing phase. A nil render only logs.
func NewRecordListingPhase(render ListingRenderer) *RecordListingPhase {
	return &RecordListingPhase{render: render}
}

// Name implements the provisioning.Phase interface.
func (p *RecordListingPhase) Name() string {
	return PhaseRecordListing
}

// Provision implements the provisioning.Phase interface.
func (p *RecordListingPhase) Provision(ctx *provisioning.Context) error {
	zone := ctx.Run.Names.Zone

	cnames, err := listRecordSets(ctx, zone, azure.RecordTypeCNAME)
	if err != nil {
		return err
	}
	addresses, err := listRecordSets(ctx, zone, azure.RecordTypeA)
	if err != nil {
		return err
	}

	listing := &provisioning.RecordListing{CNAME: cnames, A: addresses}
	ctx.State.Listing = listing

	for _, rs := range cnames {
		ctx.Observer.Printf("[%s] CNAME %s -> %s", PhaseRecordListing, rs.Name, strings.Join(Values(rs), ", "))
	}
	for _, rs := range addresses {
		ctx.Observer.Printf("[%s] A %s -> %s", PhaseRecordListing, rs.Name, strings.Join(Values(rs), ", "))
	}

	if p.render != nil {
		p.render(zone, listing)
	}
	return nil
}

func listRecordSets(ctx *provisioning.Context, zone string, recordType azure.RecordType) ([]*azure.RecordSet, error) {
	sets, err := ctx.Infra.ListRecordSets(ctx, ctx.Group(), zone, recordType)
	if err != nil {
		return nil, provisioning.NewProvisionError(zone, fmt.Errorf("failed to list %s record sets: %w", recordType, err))
	}
	return sets, nil
}

// RemoveRecordPhase deletes the apex A record from the root zone.
type RemoveRecordPhase struct{}

// NewRemoveRecordPhase creates the record removal phase.
func NewRemoveRecordPhase() *RemoveRecordPhase {
	return &RemoveRecordPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *RemoveRecordPhase) Name() string {
	return PhaseRemoveRecord
}

// Provision implements the provisioning.Phase interface.
func (p *RemoveRecordPhase) Provision(ctx *provisioning.Context) error {
	zone := ctx.Run.Names.Zone
	label := fmt.Sprintf("%s %s", azure.RecordTypeA, naming.ApexRecord)
	provisioning.LogResourceDeleting(ctx.Observer, PhaseRemoveRecord, "record set", label)

	if err := ctx.Infra.DeleteRecordSet(ctx, ctx.Group(), zone, naming.ApexRecord, azure.RecordTypeA); err != nil {
		return provisioning.NewProvisionError(fmt.Sprintf("%s in %s", label, zone), fmt.Errorf("failed to delete record set: %w", err))
	}

	ctx.State.PrimaryRecordRemoved = true
	provisioning.LogResourceDeleted(ctx.Observer, PhaseRemoveRecord, "record set", label)
	return nil
}
