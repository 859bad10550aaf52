package azure

import "time"

// Resource identifies a provisioned cloud resource.
type Resource struct {
	ID            string
	Name          string
	Location      string
	ResourceGroup string
}

// Subscription describes the subscription a run operates in.
type Subscription struct {
	Resource
	SubscriptionID string
	DisplayName    string
	State          string
}

// ResourceGroup is the container every run resource is created in.
type ResourceGroup struct {
	Resource
	Tags map[string]string
}

// Zone is a public DNS zone.
type Zone struct {
	Resource
	NameServers []string
}

// RecordType is a DNS record type.
type RecordType string

// Record types used by a run.
const (
	RecordTypeA     RecordType = "A"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSOA   RecordType = "SOA"
)

// RecordSetSpec describes a record set to create or replace.
// Only the values matching Type are used.
type RecordSetSpec struct {
	Name      string
	Type      RecordType
	TTL       int64
	ARecords  []string
	CNAME     string
	TXTValues []string
	NSRecords []string
}

// RecordSet is a DNS record set as stored by the provider.
type RecordSet struct {
	Resource
	Zone      string
	Type      RecordType
	TTL       int64
	FQDN      string
	ARecords  []string
	CNAME     string
	TXTValues []string
	NSRecords []string
}

// AppServicePlanSpec describes an App Service plan.
type AppServicePlanSpec struct {
	Name     string
	Location string
	Kind     string
	SKU      SKU
}

// SKU is an App Service pricing tier.
type SKU struct {
	Name     string
	Tier     string
	Size     string
	Family   string
	Capacity int32
}

// AppServicePlan is a provisioned App Service plan.
type AppServicePlan struct {
	Resource
	SKU SKU
}

// WebAppSpec describes a web app hosted on a plan.
type WebAppSpec struct {
	Name     string
	Location string
	PlanID   string
}

// WebApp is a provisioned web app.
type WebApp struct {
	Resource
	PlanID          string
	DefaultHostName string
	VerificationID  string
	HostNames       []string
}

// HostNameAnalysis is the provider's view of a custom host name.
type HostNameAnalysis struct {
	HostName           string
	Verified           bool
	VerificationResult string
	Conflicts          []string
}

// Address is a postal address on a domain contact.
type Address struct {
	Line1      string
	City       string
	State      string
	Country    string
	PostalCode string
}

// Contact is the registrant contact of a managed domain.
type Contact struct {
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	JobTitle     string
	Organization string
	Address      Address
}

// DomainSpec describes an App Service domain purchase.
type DomainSpec struct {
	Name          string
	Contact       Contact
	Privacy       bool
	AutoRenew     bool
	AgreementKeys []string
	AgreedBy      string
	AgreedAt      time.Time
}

// Domain is a managed App Service domain.
type Domain struct {
	Resource
	DNSType   string
	DNSZoneID string
}

// SubnetSpec describes one subnet of a virtual network.
type SubnetSpec struct {
	Name          string
	AddressPrefix string
}

// VirtualNetworkSpec describes a virtual network.
type VirtualNetworkSpec struct {
	Name         string
	Location     string
	AddressSpace []string
	Subnets      []SubnetSpec
}

// Subnet is a provisioned subnet.
type Subnet struct {
	ID            string
	Name          string
	AddressPrefix string
}

// VirtualNetwork is a provisioned virtual network.
type VirtualNetwork struct {
	Resource
	AddressSpace []string
	Subnets      []Subnet
}

// PublicIPAddressSpec describes a public IP address.
type PublicIPAddressSpec struct {
	Name        string
	Location    string
	DomainLabel string
	Static      bool
	SKU         string
	Tier        string
}

// PublicIPAddress is a provisioned public IP address. IPAddress may be
// empty until the address has been read back after creation.
type PublicIPAddress struct {
	Resource
	IPAddress   string
	DomainLabel string
	FQDN        string
}

// NetworkInterfaceSpec describes a network interface with one IP configuration.
type NetworkInterfaceSpec struct {
	Name              string
	Location          string
	IPConfigName      string
	SubnetID          string
	PublicIPAddressID string
}

// NetworkInterface is a provisioned network interface.
type NetworkInterface struct {
	Resource
	PrivateIPAddress  string
	SubnetID          string
	PublicIPAddressID string
}

// ImageReference selects a marketplace image.
type ImageReference struct {
	Publisher string
	Offer     string
	SKU       string
	Version   string
}

// OSDiskSpec describes the OS disk of a VM.
type OSDiskSpec struct {
	Caching            string
	StorageAccountType string
}

// InterfaceRef attaches a network interface to a VM.
type InterfaceRef struct {
	ID      string
	Primary bool
}

// VirtualMachineSpec describes a Linux virtual machine.
type VirtualMachineSpec struct {
	Name                string
	Location            string
	Size                string
	Image               ImageReference
	OSDisk              OSDiskSpec
	AdminUsername       string
	SSHKeyPath          string
	SSHPublicKey        string
	DisablePasswordAuth bool
	NetworkInterfaces   []InterfaceRef
	Tags                map[string]string
}

// VirtualMachine is a provisioned virtual machine.
type VirtualMachine struct {
	Resource
	Size                string
	NetworkInterfaceIDs []string
	ProvisioningState   string
}
