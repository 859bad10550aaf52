package dns

import (
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// VerificationRecordsPhase adds the records App Service needs to verify the
// custom domain: a CNAME for www and the asuid TXT records.
type VerificationRecordsPhase struct{}

// NewVerificationRecordsPhase creates the verification records phase.
func NewVerificationRecordsPhase() *VerificationRecordsPhase {
	return &VerificationRecordsPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *VerificationRecordsPhase) Name() string {
	return PhaseVerificationRecords
}

// Provision implements the provisioning.Phase interface.
func (p *VerificationRecordsPhase) Provision(ctx *provisioning.Context) error {
	zone, app := ctx.State.RootZone, ctx.State.WebApp
	if zone == nil || app == nil {
		return provisioning.NewProvisionError(ctx.Run.Names.Zone, fmt.Errorf("root zone and web app must exist first"))
	}

	specs := []azure.RecordSetSpec{
		{Name: naming.CNAMERecord, Type: azure.RecordTypeCNAME, TTL: TTL, CNAME: app.DefaultHostName},
		{Name: naming.TXTRecordWWW, Type: azure.RecordTypeTXT, TTL: TTL, TXTValues: []string{app.VerificationID}},
		{Name: naming.TXTRecordApex, Type: azure.RecordTypeTXT, TTL: TTL, TXTValues: []string{app.VerificationID}},
	}

	for _, spec := range specs {
		rs, err := createRecordSet(ctx, PhaseVerificationRecords, zone.Name, spec)
		if err != nil {
			return err
		}
		ctx.State.VerificationRecords = append(ctx.State.VerificationRecords, rs)
	}
	return nil
}
