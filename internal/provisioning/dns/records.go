package dns

import (
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// TTL is the time-to-live of every record set a run creates, in seconds.
const TTL = 3600

// CreateAddressRecord points the apex of zone at ip.
func CreateAddressRecord(ctx *provisioning.Context, phase, zone, ip string) (*azure.RecordSet, error) {
	if ip == "" {
		return nil, provisioning.NewProvisionError(zone, fmt.Errorf("no IP address for apex A record"))
	}
	return createRecordSet(ctx, phase, zone, azure.RecordSetSpec{
		Name:     naming.ApexRecord,
		Type:     azure.RecordTypeA,
		TTL:      TTL,
		ARecords: []string{ip},
	})
}

func createRecordSet(ctx *provisioning.Context, phase, zone string, spec azure.RecordSetSpec) (*azure.RecordSet, error) {
	label := fmt.Sprintf("%s %s", spec.Type, spec.Name)
	provisioning.LogResourceCreating(ctx.Observer, phase, "record set", label)

	rs, err := ctx.Infra.CreateRecordSet(ctx, ctx.Group(), zone, spec)
	if err != nil {
		return nil, provisioning.NewProvisionError(fmt.Sprintf("%s in %s", label, zone), fmt.Errorf("failed to create record set: %w", err))
	}

	provisioning.LogResourceCreated(ctx.Observer, phase, "record set", label, rs.ID,
		map[string]string{"zone": zone})
	return rs, nil
}

// Values renders the data of a record set for display.
func Values(rs *azure.RecordSet) []string {
	switch rs.Type {
	case azure.RecordTypeA:
		return rs.ARecords
	case azure.RecordTypeCNAME:
		if rs.CNAME == "" {
			return nil
		}
		return []string{rs.CNAME}
	case azure.RecordTypeTXT:
		return rs.TXTValues
	case azure.RecordTypeNS:
		return rs.NSRecords
	}
	return nil
}
