package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"

	"github.com/imamik/azdns/internal/util/ptr"
)

// ZoneLocation is the location every public DNS zone lives in.
const ZoneLocation = "global"

// CreateZone creates or updates a public DNS zone.
func (c *RealClient) CreateZone(ctx context.Context, group, name string) (*Zone, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.zones.CreateOrUpdate(ctx, group, name, armdns.Zone{
		Location: to.Ptr(ZoneLocation),
		Properties: &armdns.ZoneProperties{
			ZoneType: to.Ptr(armdns.ZoneTypePublic),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zone %q: %w", name, err)
	}
	return zoneFromSDK(group, &resp.Zone), nil
}

// DeleteZone deletes a DNS zone and all of its record sets.
func (c *RealClient) DeleteZone(ctx context.Context, group, name string) error {
	return (&DeleteOperation[armdns.ZonesClientDeleteResponse]{
		Name:         name,
		ResourceType: "zone",
		Begin: func(ctx context.Context) (*runtime.Poller[armdns.ZonesClientDeleteResponse], error) {
			return c.zones.BeginDelete(ctx, group, name, nil)
		},
	}).Execute(ctx, c)
}

// CreateRecordSet creates or replaces a record set.
func (c *RealClient) CreateRecordSet(ctx context.Context, group, zone string, spec RecordSetSpec) (*RecordSet, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.recordSets.CreateOrUpdate(ctx, group, zone, spec.Name, armdns.RecordType(spec.Type), recordSetToSDK(spec), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s record %q in zone %q: %w", spec.Type, spec.Name, zone, err)
	}
	return withType(recordSetFromSDK(group, zone, &resp.RecordSet), spec.Type), nil
}

// DeleteRecordSet deletes a record set. Deleting a missing record set succeeds.
func (c *RealClient) DeleteRecordSet(ctx context.Context, group, zone, name string, recordType RecordType) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	_, err := c.recordSets.Delete(ctx, group, zone, name, armdns.RecordType(recordType), nil)
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete %s record %q in zone %q: %w", recordType, name, zone, err)
	}
	return nil
}

// ListRecordSets consumes the list-by-type pager once and returns every page.
func (c *RealClient) ListRecordSets(ctx context.Context, group, zone string, recordType RecordType) ([]*RecordSet, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	var out []*RecordSet
	pager := c.recordSets.NewListByTypePager(group, zone, armdns.RecordType(recordType), nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s records in zone %q: %w", recordType, zone, err)
		}
		for _, rs := range page.Value {
			if rs != nil {
				out = append(out, withType(recordSetFromSDK(group, zone, rs), recordType))
			}
		}
	}
	return out, nil
}

func zoneFromSDK(group string, z *armdns.Zone) *Zone {
	out := &Zone{
		Resource: Resource{
			ID:            ptr.Deref(z.ID),
			Name:          ptr.Deref(z.Name),
			Location:      ptr.Deref(z.Location),
			ResourceGroup: group,
		},
	}
	if z.Properties != nil {
		out.NameServers = ptr.Strings(z.Properties.NameServers)
	}
	return out
}

func recordSetToSDK(spec RecordSetSpec) armdns.RecordSet {
	props := &armdns.RecordSetProperties{
		TTL: to.Ptr(spec.TTL),
	}
	switch spec.Type {
	case RecordTypeA:
		for _, ip := range spec.ARecords {
			props.ARecords = append(props.ARecords, &armdns.ARecord{IPv4Address: to.Ptr(ip)})
		}
	case RecordTypeCNAME:
		props.CnameRecord = &armdns.CnameRecord{Cname: to.Ptr(spec.CNAME)}
	case RecordTypeTXT:
		for _, v := range spec.TXTValues {
			props.TxtRecords = append(props.TxtRecords, &armdns.TxtRecord{Value: []*string{to.Ptr(v)}})
		}
	case RecordTypeNS:
		for _, ns := range spec.NSRecords {
			props.NsRecords = append(props.NsRecords, &armdns.NsRecord{Nsdname: to.Ptr(ns)})
		}
	}
	return armdns.RecordSet{Properties: props}
}

func recordSetFromSDK(group, zone string, rs *armdns.RecordSet) *RecordSet {
	out := &RecordSet{
		Resource: Resource{
			ID:            ptr.Deref(rs.ID),
			Name:          ptr.Deref(rs.Name),
			Location:      ZoneLocation,
			ResourceGroup: group,
		},
		Zone: zone,
		Type: recordTypeFromID(ptr.Deref(rs.Type)),
	}
	p := rs.Properties
	if p == nil {
		return out
	}
	out.TTL = ptr.Deref(p.TTL)
	out.FQDN = ptr.Deref(p.Fqdn)
	for _, a := range p.ARecords {
		if a != nil {
			out.ARecords = append(out.ARecords, ptr.Deref(a.IPv4Address))
		}
	}
	if p.CnameRecord != nil {
		out.CNAME = ptr.Deref(p.CnameRecord.Cname)
	}
	for _, t := range p.TxtRecords {
		if t != nil {
			out.TXTValues = append(out.TXTValues, ptr.Strings(t.Value)...)
		}
	}
	for _, ns := range p.NsRecords {
		if ns != nil {
			out.NSRecords = append(out.NSRecords, ptr.Deref(ns.Nsdname))
		}
	}
	return out
}

// withType fills in the record type when the response omits it.
func withType(rs *RecordSet, recordType RecordType) *RecordSet {
	if rs.Type == "" {
		rs.Type = recordType
	}
	return rs
}

// recordTypeFromID maps "Microsoft.Network/dnszones/A" to RecordTypeA.
func recordTypeFromID(resourceType string) RecordType {
	return RecordType(resourceType[strings.LastIndex(resourceType, "/")+1:])
}
