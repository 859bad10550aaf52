package azure

import "context"

// SubscriptionReader resolves the subscription a run operates in.
type SubscriptionReader interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error)
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (*ResourceGroup, error)
	// DeleteResourceGroup deletes the group and everything in it, waiting
	// for completion. Deleting a missing group succeeds.
	DeleteResourceGroup(ctx context.Context, name string) error
}

// DNSManager defines the interface for managing DNS zones and record sets.
type DNSManager interface {
	CreateZone(ctx context.Context, group, name string) (*Zone, error)
	DeleteZone(ctx context.Context, group, name string) error
	CreateRecordSet(ctx context.Context, group, zone string, spec RecordSetSpec) (*RecordSet, error)
	DeleteRecordSet(ctx context.Context, group, zone, name string, recordType RecordType) error
	// ListRecordSets returns every record set of the given type in the zone.
	ListRecordSets(ctx context.Context, group, zone string, recordType RecordType) ([]*RecordSet, error)
}

// AppServiceManager defines the interface for managing plans and web apps.
type AppServiceManager interface {
	CreateAppServicePlan(ctx context.Context, group string, spec AppServicePlanSpec) (*AppServicePlan, error)
	CreateWebApp(ctx context.Context, group string, spec WebAppSpec) (*WebApp, error)
	AnalyzeCustomHostName(ctx context.Context, group, app, hostName string) (*HostNameAnalysis, error)
	// BindHostName binds a verified custom host name to the app.
	BindHostName(ctx context.Context, group, app, hostName string) error
}

// DomainManager defines the interface for managing App Service domains.
type DomainManager interface {
	CreateDomain(ctx context.Context, group string, spec DomainSpec) (*Domain, error)
	// BindDomainToZone switches the domain to Azure DNS served by the given zone.
	BindDomainToZone(ctx context.Context, group, domain, zoneID string) (*Domain, error)
}

// NetworkManager defines the interface for managing networking resources.
type NetworkManager interface {
	CreateVirtualNetwork(ctx context.Context, group string, spec VirtualNetworkSpec) (*VirtualNetwork, error)
	CreatePublicIPAddress(ctx context.Context, group string, spec PublicIPAddressSpec) (*PublicIPAddress, error)
	GetPublicIPAddress(ctx context.Context, group, name string) (*PublicIPAddress, error)
	CreateNetworkInterface(ctx context.Context, group string, spec NetworkInterfaceSpec) (*NetworkInterface, error)
}

// ComputeManager defines the interface for managing virtual machines.
type ComputeManager interface {
	CreateVirtualMachine(ctx context.Context, group string, spec VirtualMachineSpec) (*VirtualMachine, error)
}

// InfrastructureManager combines all infrastructure interfaces.
type InfrastructureManager interface {
	SubscriptionReader
	ResourceGroupManager
	DNSManager
	AppServiceManager
	DomainManager
	NetworkManager
	ComputeManager
}
