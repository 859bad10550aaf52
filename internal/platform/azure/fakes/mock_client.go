package fakes

import (
	"context"
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
)

// MockClient is a func-field azure.InfrastructureManager for tests that
// only need to override a handful of calls.
// Unset functions return a minimal handle built from the request.
type MockClient struct {
	GetSubscriptionFunc func(ctx context.Context, subscriptionID string) (*azure.Subscription, error)

	// ResourceGroup
	CreateResourceGroupFunc func(ctx context.Context, name, location string, tags map[string]string) (*azure.ResourceGroup, error)
	DeleteResourceGroupFunc func(ctx context.Context, name string) error

	// DNS
	CreateZoneFunc      func(ctx context.Context, group, name string) (*azure.Zone, error)
	DeleteZoneFunc      func(ctx context.Context, group, name string) error
	CreateRecordSetFunc func(ctx context.Context, group, zone string, spec azure.RecordSetSpec) (*azure.RecordSet, error)
	DeleteRecordSetFunc func(ctx context.Context, group, zone, name string, recordType azure.RecordType) error
	ListRecordSetsFunc  func(ctx context.Context, group, zone string, recordType azure.RecordType) ([]*azure.RecordSet, error)

	// AppService
	CreateAppServicePlanFunc  func(ctx context.Context, group string, spec azure.AppServicePlanSpec) (*azure.AppServicePlan, error)
	CreateWebAppFunc          func(ctx context.Context, group string, spec azure.WebAppSpec) (*azure.WebApp, error)
	AnalyzeCustomHostNameFunc func(ctx context.Context, group, app, hostName string) (*azure.HostNameAnalysis, error)
	BindHostNameFunc          func(ctx context.Context, group, app, hostName string) error

	// Domain
	CreateDomainFunc     func(ctx context.Context, group string, spec azure.DomainSpec) (*azure.Domain, error)
	BindDomainToZoneFunc func(ctx context.Context, group, domain, zoneID string) (*azure.Domain, error)

	// Network
	CreateVirtualNetworkFunc   func(ctx context.Context, group string, spec azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error)
	CreatePublicIPAddressFunc  func(ctx context.Context, group string, spec azure.PublicIPAddressSpec) (*azure.PublicIPAddress, error)
	GetPublicIPAddressFunc     func(ctx context.Context, group, name string) (*azure.PublicIPAddress, error)
	CreateNetworkInterfaceFunc func(ctx context.Context, group string, spec azure.NetworkInterfaceSpec) (*azure.NetworkInterface, error)

	// Compute
	CreateVirtualMachineFunc func(ctx context.Context, group string, spec azure.VirtualMachineSpec) (*azure.VirtualMachine, error)
}

// Ensure interface compliance
var _ azure.InfrastructureManager = (*MockClient)(nil)

func mockResource(group, kind, name, location string) azure.Resource {
	return azure.Resource{
		ID:            fmt.Sprintf("/subscriptions/mock/resourceGroups/%s/providers/%s/%s", group, kind, name),
		Name:          name,
		Location:      location,
		ResourceGroup: group,
	}
}

// GetSubscription mocks subscription lookup.
func (m *MockClient) GetSubscription(ctx context.Context, subscriptionID string) (*azure.Subscription, error) {
	if m.GetSubscriptionFunc != nil {
		return m.GetSubscriptionFunc(ctx, subscriptionID)
	}
	return &azure.Subscription{
		Resource:       azure.Resource{ID: "/subscriptions/" + subscriptionID, Name: "mock"},
		SubscriptionID: subscriptionID,
		DisplayName:    "mock",
		State:          "Enabled",
	}, nil
}

// CreateResourceGroup mocks resource group creation.
func (m *MockClient) CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (*azure.ResourceGroup, error) {
	if m.CreateResourceGroupFunc != nil {
		return m.CreateResourceGroupFunc(ctx, name, location, tags)
	}
	return &azure.ResourceGroup{
		Resource: azure.Resource{ID: "/subscriptions/mock/resourceGroups/" + name, Name: name, Location: location, ResourceGroup: name},
		Tags:     tags,
	}, nil
}

// DeleteResourceGroup mocks resource group deletion.
func (m *MockClient) DeleteResourceGroup(ctx context.Context, name string) error {
	if m.DeleteResourceGroupFunc != nil {
		return m.DeleteResourceGroupFunc(ctx, name)
	}
	return nil
}

// CreateZone mocks zone creation.
func (m *MockClient) CreateZone(ctx context.Context, group, name string) (*azure.Zone, error) {
	if m.CreateZoneFunc != nil {
		return m.CreateZoneFunc(ctx, group, name)
	}
	return &azure.Zone{
		Resource:    mockResource(group, "Microsoft.Network/dnszones", name, azure.ZoneLocation),
		NameServers: []string{"ns1-01.azure-dns.com.", "ns2-01.azure-dns.net."},
	}, nil
}

// DeleteZone mocks zone deletion.
func (m *MockClient) DeleteZone(ctx context.Context, group, name string) error {
	if m.DeleteZoneFunc != nil {
		return m.DeleteZoneFunc(ctx, group, name)
	}
	return nil
}

// CreateRecordSet mocks record set creation.
func (m *MockClient) CreateRecordSet(ctx context.Context, group, zone string, spec azure.RecordSetSpec) (*azure.RecordSet, error) {
	if m.CreateRecordSetFunc != nil {
		return m.CreateRecordSetFunc(ctx, group, zone, spec)
	}
	return &azure.RecordSet{
		Resource:  mockResource(group, "Microsoft.Network/dnszones/"+zone+"/"+string(spec.Type), spec.Name, azure.ZoneLocation),
		Zone:      zone,
		Type:      spec.Type,
		TTL:       spec.TTL,
		ARecords:  spec.ARecords,
		CNAME:     spec.CNAME,
		TXTValues: spec.TXTValues,
		NSRecords: spec.NSRecords,
	}, nil
}

// DeleteRecordSet mocks record set deletion.
func (m *MockClient) DeleteRecordSet(ctx context.Context, group, zone, name string, recordType azure.RecordType) error {
	if m.DeleteRecordSetFunc != nil {
		return m.DeleteRecordSetFunc(ctx, group, zone, name, recordType)
	}
	return nil
}

// ListRecordSets mocks record set listing.
func (m *MockClient) ListRecordSets(ctx context.Context, group, zone string, recordType azure.RecordType) ([]*azure.RecordSet, error) {
	if m.ListRecordSetsFunc != nil {
		return m.ListRecordSetsFunc(ctx, group, zone, recordType)
	}
	return nil, nil
}

// CreateAppServicePlan mocks plan creation.
func (m *MockClient) CreateAppServicePlan(ctx context.Context, group string, spec azure.AppServicePlanSpec) (*azure.AppServicePlan, error) {
	if m.CreateAppServicePlanFunc != nil {
		return m.CreateAppServicePlanFunc(ctx, group, spec)
	}
	return &azure.AppServicePlan{
		Resource: mockResource(group, "Microsoft.Web/serverfarms", spec.Name, spec.Location),
		SKU:      spec.SKU,
	}, nil
}

// CreateWebApp mocks web app creation.
func (m *MockClient) CreateWebApp(ctx context.Context, group string, spec azure.WebAppSpec) (*azure.WebApp, error) {
	if m.CreateWebAppFunc != nil {
		return m.CreateWebAppFunc(ctx, group, spec)
	}
	return &azure.WebApp{
		Resource:        mockResource(group, "Microsoft.Web/sites", spec.Name, spec.Location),
		PlanID:          spec.PlanID,
		DefaultHostName: spec.Name + ".azurewebsites.net",
		VerificationID:  "mock-verification-id",
	}, nil
}

// AnalyzeCustomHostName mocks host name analysis.
func (m *MockClient) AnalyzeCustomHostName(ctx context.Context, group, app, hostName string) (*azure.HostNameAnalysis, error) {
	if m.AnalyzeCustomHostNameFunc != nil {
		return m.AnalyzeCustomHostNameFunc(ctx, group, app, hostName)
	}
	return &azure.HostNameAnalysis{HostName: hostName, Verified: true, VerificationResult: "Passed"}, nil
}

// BindHostName mocks host name binding.
func (m *MockClient) BindHostName(ctx context.Context, group, app, hostName string) error {
	if m.BindHostNameFunc != nil {
		return m.BindHostNameFunc(ctx, group, app, hostName)
	}
	return nil
}

// CreateDomain mocks domain creation.
func (m *MockClient) CreateDomain(ctx context.Context, group string, spec azure.DomainSpec) (*azure.Domain, error) {
	if m.CreateDomainFunc != nil {
		return m.CreateDomainFunc(ctx, group, spec)
	}
	return &azure.Domain{Resource: mockResource(group, "Microsoft.DomainRegistration/domains", spec.Name, azure.DomainLocation)}, nil
}

// BindDomainToZone mocks the domain DNS patch.
func (m *MockClient) BindDomainToZone(ctx context.Context, group, domain, zoneID string) (*azure.Domain, error) {
	if m.BindDomainToZoneFunc != nil {
		return m.BindDomainToZoneFunc(ctx, group, domain, zoneID)
	}
	return &azure.Domain{
		Resource:  mockResource(group, "Microsoft.DomainRegistration/domains", domain, azure.DomainLocation),
		DNSType:   "AzureDns",
		DNSZoneID: zoneID,
	}, nil
}

// CreateVirtualNetwork mocks virtual network creation.
func (m *MockClient) CreateVirtualNetwork(ctx context.Context, group string, spec azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error) {
	if m.CreateVirtualNetworkFunc != nil {
		return m.CreateVirtualNetworkFunc(ctx, group, spec)
	}
	vn := &azure.VirtualNetwork{
		Resource:     mockResource(group, "Microsoft.Network/virtualNetworks", spec.Name, spec.Location),
		AddressSpace: spec.AddressSpace,
	}
	for _, s := range spec.Subnets {
		vn.Subnets = append(vn.Subnets, azure.Subnet{ID: vn.ID + "/subnets/" + s.Name, Name: s.Name, AddressPrefix: s.AddressPrefix})
	}
	return vn, nil
}

// CreatePublicIPAddress mocks public IP creation.
func (m *MockClient) CreatePublicIPAddress(ctx context.Context, group string, spec azure.PublicIPAddressSpec) (*azure.PublicIPAddress, error) {
	if m.CreatePublicIPAddressFunc != nil {
		return m.CreatePublicIPAddressFunc(ctx, group, spec)
	}
	return &azure.PublicIPAddress{
		Resource:    mockResource(group, "Microsoft.Network/publicIPAddresses", spec.Name, spec.Location),
		DomainLabel: spec.DomainLabel,
	}, nil
}

// GetPublicIPAddress mocks public IP lookup.
func (m *MockClient) GetPublicIPAddress(ctx context.Context, group, name string) (*azure.PublicIPAddress, error) {
	if m.GetPublicIPAddressFunc != nil {
		return m.GetPublicIPAddressFunc(ctx, group, name)
	}
	return &azure.PublicIPAddress{
		Resource:  mockResource(group, "Microsoft.Network/publicIPAddresses", name, ""),
		IPAddress: "203.0.113.10",
	}, nil
}

// CreateNetworkInterface mocks network interface creation.
func (m *MockClient) CreateNetworkInterface(ctx context.Context, group string, spec azure.NetworkInterfaceSpec) (*azure.NetworkInterface, error) {
	if m.CreateNetworkInterfaceFunc != nil {
		return m.CreateNetworkInterfaceFunc(ctx, group, spec)
	}
	return &azure.NetworkInterface{
		Resource:          mockResource(group, "Microsoft.Network/networkInterfaces", spec.Name, spec.Location),
		PrivateIPAddress:  "10.10.1.4",
		SubnetID:          spec.SubnetID,
		PublicIPAddressID: spec.PublicIPAddressID,
	}, nil
}

// CreateVirtualMachine mocks VM creation.
func (m *MockClient) CreateVirtualMachine(ctx context.Context, group string, spec azure.VirtualMachineSpec) (*azure.VirtualMachine, error) {
	if m.CreateVirtualMachineFunc != nil {
		return m.CreateVirtualMachineFunc(ctx, group, spec)
	}
	vm := &azure.VirtualMachine{
		Resource:          mockResource(group, "Microsoft.Compute/virtualMachines", spec.Name, spec.Location),
		Size:              spec.Size,
		ProvisioningState: "Succeeded",
	}
	for _, ref := range spec.NetworkInterfaces {
		vm.NetworkInterfaceIDs = append(vm.NetworkInterfaceIDs, ref.ID)
	}
	return vm, nil
}
