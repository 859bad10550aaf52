package fakes

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/imamik/azdns/internal/platform/azure"
)

// GetSubscription returns an enabled subscription with the given ID.
func (p *Provider) GetSubscription(ctx context.Context, subscriptionID string) (*azure.Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpGetSubscription, "", subscriptionID); err != nil {
		return nil, err
	}
	return &azure.Subscription{
		Resource:       azure.Resource{ID: "/subscriptions/" + subscriptionID, Name: "fake"},
		SubscriptionID: subscriptionID,
		DisplayName:    "fake",
		State:          "Enabled",
	}, nil
}

// CreateResourceGroup creates or updates a group.
func (p *Provider) CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (*azure.ResourceGroup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateResourceGroup, name, name); err != nil {
		return nil, err
	}
	rg := &azure.ResourceGroup{
		Resource: azure.Resource{ID: "/subscriptions/fake/resourceGroups/" + name, Name: name, Location: location, ResourceGroup: name},
		Tags:     maps.Clone(tags),
	}
	p.groups[name] = rg
	cp := *rg
	return &cp, nil
}

// DeleteResourceGroup removes the group and everything created in it.
// Deleting a missing group succeeds.
func (p *Provider) DeleteResourceGroup(ctx context.Context, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpDeleteResourceGroup, name, name); err != nil {
		return err
	}
	delete(p.groups, name)
	prefix := name + "/"
	inGroup := func(k string) bool { return strings.HasPrefix(k, prefix) }
	maps.DeleteFunc(p.zones, func(k string, _ *zoneState) bool { return inGroup(k) })
	maps.DeleteFunc(p.apps, func(k string, _ *azure.WebApp) bool { return inGroup(k) })
	maps.DeleteFunc(p.domains, func(k string, _ *azure.Domain) bool { return inGroup(k) })
	maps.DeleteFunc(p.addresses, func(k string, _ *azure.PublicIPAddress) bool { return inGroup(k) })
	maps.DeleteFunc(p.resources, func(_ string, g string) bool { return g == name })
	return nil
}

// CreateZone creates a zone with four distinct name servers.
func (p *Provider) CreateZone(ctx context.Context, group, name string) (*azure.Zone, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateZone, group, name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}

	key := zoneKey(group, name)
	if zs, ok := p.zones[key]; ok {
		cp := *zs.zone
		return &cp, nil
	}

	p.zoneSeq++
	n := p.zoneSeq
	zone := &azure.Zone{
		Resource: p.newResource(group, "Microsoft.Network/dnszones", name, azure.ZoneLocation),
		NameServers: []string{
			fmt.Sprintf("ns1-%02d.azure-dns.com.", n),
			fmt.Sprintf("ns2-%02d.azure-dns.net.", n),
			fmt.Sprintf("ns3-%02d.azure-dns.org.", n),
			fmt.Sprintf("ns4-%02d.azure-dns.info.", n),
		},
	}
	p.zones[key] = &zoneState{zone: zone, records: make(map[string]*azure.RecordSet)}
	cp := *zone
	return &cp, nil
}

// DeleteZone removes a zone and its record sets.
func (p *Provider) DeleteZone(ctx context.Context, group, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpDeleteZone, group, name); err != nil {
		return err
	}
	key := zoneKey(group, name)
	if zs, ok := p.zones[key]; ok {
		delete(p.resources, zs.zone.ID)
		delete(p.zones, key)
	}
	return nil
}

// CreateRecordSet creates or replaces a record set in an existing zone.
func (p *Provider) CreateRecordSet(ctx context.Context, group, zone string, spec azure.RecordSetSpec) (*azure.RecordSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateRecordSet, group, zone+"/"+string(spec.Type)+"/"+spec.Name); err != nil {
		return nil, err
	}
	zs, ok := p.zones[zoneKey(group, zone)]
	if !ok {
		return nil, ResourceError(http.StatusNotFound, "ParentResourceNotFound")
	}

	fqdn := zone + "."
	if spec.Name != "@" {
		fqdn = spec.Name + "." + zone + "."
	}
	rs := &azure.RecordSet{
		Resource: azure.Resource{
			ID:            fmt.Sprintf("%s/%s/%s", zs.zone.ID, spec.Type, spec.Name),
			Name:          spec.Name,
			Location:      azure.ZoneLocation,
			ResourceGroup: group,
		},
		Zone:      zone,
		Type:      spec.Type,
		TTL:       spec.TTL,
		FQDN:      fqdn,
		ARecords:  slices.Clone(spec.ARecords),
		CNAME:     spec.CNAME,
		TXTValues: slices.Clone(spec.TXTValues),
		NSRecords: slices.Clone(spec.NSRecords),
	}
	zs.records[recordKey(spec.Name, spec.Type)] = rs
	cp := *rs
	return &cp, nil
}

// DeleteRecordSet removes a record set. Deleting a missing record set succeeds.
func (p *Provider) DeleteRecordSet(ctx context.Context, group, zone, name string, recordType azure.RecordType) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpDeleteRecordSet, group, zone+"/"+string(recordType)+"/"+name); err != nil {
		return err
	}
	if zs, ok := p.zones[zoneKey(group, zone)]; ok {
		delete(zs.records, recordKey(name, recordType))
	}
	return nil
}

// ListRecordSets returns the record sets of one type, ordered by name.
func (p *Provider) ListRecordSets(ctx context.Context, group, zone string, recordType azure.RecordType) ([]*azure.RecordSet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpListRecordSets, group, zone+"/"+string(recordType)); err != nil {
		return nil, err
	}
	zs, ok := p.zones[zoneKey(group, zone)]
	if !ok {
		return nil, ResourceError(http.StatusNotFound, "ParentResourceNotFound")
	}

	var out []*azure.RecordSet
	for _, rs := range zs.records {
		if rs.Type == recordType {
			cp := *rs
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *azure.RecordSet) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// CreateAppServicePlan creates a plan.
func (p *Provider) CreateAppServicePlan(ctx context.Context, group string, spec azure.AppServicePlanSpec) (*azure.AppServicePlan, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateAppServicePlan, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	return &azure.AppServicePlan{
		Resource: p.newResource(group, "Microsoft.Web/serverfarms", spec.Name, spec.Location),
		SKU:      spec.SKU,
	}, nil
}

// CreateWebApp creates a web app on an existing plan.
func (p *Provider) CreateWebApp(ctx context.Context, group string, spec azure.WebAppSpec) (*azure.WebApp, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateWebApp, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	if _, ok := p.resources[spec.PlanID]; !ok {
		return nil, ResourceError(http.StatusNotFound, "ServerFarmNotFound")
	}

	lower := strings.ToLower(spec.Name)
	app := &azure.WebApp{
		Resource:        p.newResource(group, "Microsoft.Web/sites", spec.Name, spec.Location),
		PlanID:          spec.PlanID,
		DefaultHostName: lower + ".azurewebsites.net",
		VerificationID:  "verify-" + lower,
		HostNames:       []string{lower + ".azurewebsites.net"},
	}
	p.apps[group+"/"+lower] = app
	cp := *app
	return &cp, nil
}

// AnalyzeCustomHostName reports whether the apex TXT verification record
// carrying the app's verification ID exists in the host name's zone.
func (p *Provider) AnalyzeCustomHostName(ctx context.Context, group, app, hostName string) (*azure.HostNameAnalysis, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpAnalyzeCustomHostName, group, hostName); err != nil {
		return nil, err
	}
	a, ok := p.apps[group+"/"+strings.ToLower(app)]
	if !ok {
		return nil, ResourceError(http.StatusNotFound, "NotFound")
	}

	verified := p.verifiedLocked(group, a, hostName)
	result := "Failed"
	if verified {
		result = "Passed"
	}
	return &azure.HostNameAnalysis{HostName: hostName, Verified: verified, VerificationResult: result}, nil
}

// BindHostName binds a verified host name to the app.
func (p *Provider) BindHostName(ctx context.Context, group, app, hostName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpBindHostName, group, hostName); err != nil {
		return err
	}
	a, ok := p.apps[group+"/"+strings.ToLower(app)]
	if !ok {
		return ResourceError(http.StatusNotFound, "NotFound")
	}
	if p.bindFailures > 0 {
		p.bindFailures--
		return &azure.HostNameNotVerifiedError{HostName: hostName, Reason: "verification record not visible yet"}
	}
	if !p.verifiedLocked(group, a, hostName) {
		return &azure.HostNameNotVerifiedError{HostName: hostName, Reason: "no asuid TXT record with the verification ID"}
	}
	if !slices.Contains(a.HostNames, hostName) {
		a.HostNames = append(a.HostNames, hostName)
	}
	return nil
}

func (p *Provider) verifiedLocked(group string, app *azure.WebApp, hostName string) bool {
	zs, ok := p.zones[zoneKey(group, hostName)]
	if !ok {
		return false
	}
	rs, ok := zs.records[recordKey("asuid", azure.RecordTypeTXT)]
	return ok && slices.Contains(rs.TXTValues, app.VerificationID)
}

// CreateDomain registers a managed domain.
func (p *Provider) CreateDomain(ctx context.Context, group string, spec azure.DomainSpec) (*azure.Domain, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateDomain, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	if len(spec.AgreementKeys) == 0 || spec.AgreedBy == "" {
		return nil, ResourceError(http.StatusBadRequest, "MissingConsent")
	}
	d := &azure.Domain{Resource: p.newResource(group, "Microsoft.DomainRegistration/domains", spec.Name, azure.DomainLocation)}
	p.domains[group+"/"+strings.ToLower(spec.Name)] = d
	cp := *d
	return &cp, nil
}

// BindDomainToZone points an existing domain at an Azure DNS zone.
func (p *Provider) BindDomainToZone(ctx context.Context, group, domain, zoneID string) (*azure.Domain, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpBindDomainToZone, group, domain); err != nil {
		return nil, err
	}
	d, ok := p.domains[group+"/"+strings.ToLower(domain)]
	if !ok {
		return nil, ResourceError(http.StatusNotFound, "NotFound")
	}
	if _, ok := p.resources[zoneID]; !ok {
		return nil, ResourceError(http.StatusBadRequest, "InvalidDnsZoneId")
	}
	d.DNSType = "AzureDns"
	d.DNSZoneID = zoneID
	cp := *d
	return &cp, nil
}

// CreateVirtualNetwork creates a network and its subnets.
func (p *Provider) CreateVirtualNetwork(ctx context.Context, group string, spec azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateVirtualNetwork, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	vn := &azure.VirtualNetwork{
		Resource:     p.newResource(group, "Microsoft.Network/virtualNetworks", spec.Name, spec.Location),
		AddressSpace: slices.Clone(spec.AddressSpace),
	}
	for _, s := range spec.Subnets {
		id := vn.ID + "/subnets/" + s.Name
		p.resources[id] = group
		vn.Subnets = append(vn.Subnets, azure.Subnet{ID: id, Name: s.Name, AddressPrefix: s.AddressPrefix})
	}
	return vn, nil
}

// CreatePublicIPAddress allocates an address. Like the real service, the
// create response carries no IP; read it back with GetPublicIPAddress.
func (p *Provider) CreatePublicIPAddress(ctx context.Context, group string, spec azure.PublicIPAddressSpec) (*azure.PublicIPAddress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreatePublicIPAddress, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	p.ipSeq++
	addr := &azure.PublicIPAddress{
		Resource:    p.newResource(group, "Microsoft.Network/publicIPAddresses", spec.Name, spec.Location),
		IPAddress:   fmt.Sprintf("203.0.113.%d", p.ipSeq),
		DomainLabel: spec.DomainLabel,
	}
	if spec.DomainLabel != "" {
		addr.FQDN = fmt.Sprintf("%s.%s.cloudapp.azure.com", spec.DomainLabel, spec.Location)
	}
	p.addresses[group+"/"+strings.ToLower(spec.Name)] = addr
	cp := *addr
	cp.IPAddress = ""
	return &cp, nil
}

// GetPublicIPAddress reads an address, including its IP.
func (p *Provider) GetPublicIPAddress(ctx context.Context, group, name string) (*azure.PublicIPAddress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpGetPublicIPAddress, group, name); err != nil {
		return nil, err
	}
	addr, ok := p.addresses[group+"/"+strings.ToLower(name)]
	if !ok {
		return nil, ResourceError(http.StatusNotFound, "ResourceNotFound")
	}
	cp := *addr
	return &cp, nil
}

// CreateNetworkInterface creates an interface bound to an existing subnet
// and, optionally, an existing public address.
func (p *Provider) CreateNetworkInterface(ctx context.Context, group string, spec azure.NetworkInterfaceSpec) (*azure.NetworkInterface, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateNetworkInterface, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	if _, ok := p.resources[spec.SubnetID]; !ok {
		return nil, ResourceError(http.StatusBadRequest, "InvalidResourceReference")
	}
	if spec.PublicIPAddressID != "" {
		if _, ok := p.resources[spec.PublicIPAddressID]; !ok {
			return nil, ResourceError(http.StatusBadRequest, "InvalidResourceReference")
		}
	}
	return &azure.NetworkInterface{
		Resource:          p.newResource(group, "Microsoft.Network/networkInterfaces", spec.Name, spec.Location),
		PrivateIPAddress:  "10.10.1.4",
		SubnetID:          spec.SubnetID,
		PublicIPAddressID: spec.PublicIPAddressID,
	}, nil
}

// CreateVirtualMachine creates a VM attached to existing interfaces.
func (p *Provider) CreateVirtualMachine(ctx context.Context, group string, spec azure.VirtualMachineSpec) (*azure.VirtualMachine, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.record(OpCreateVirtualMachine, group, spec.Name); err != nil {
		return nil, err
	}
	if err := p.requireGroup(group); err != nil {
		return nil, err
	}
	if len(spec.NetworkInterfaces) == 0 {
		return nil, azure.ErrNoNetworkInterface
	}
	ids := make([]string, 0, len(spec.NetworkInterfaces))
	for _, ref := range spec.NetworkInterfaces {
		if _, ok := p.resources[ref.ID]; !ok {
			return nil, ResourceError(http.StatusBadRequest, "InvalidResourceReference")
		}
		ids = append(ids, ref.ID)
	}
	return &azure.VirtualMachine{
		Resource:            p.newResource(group, "Microsoft.Compute/virtualMachines", spec.Name, spec.Location),
		Size:                spec.Size,
		NetworkInterfaceIDs: ids,
		ProvisioningState:   "Succeeded",
	}, nil
}
