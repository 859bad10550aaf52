package compute

import (
	"context"
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/keygen"
	"github.com/imamik/azdns/internal/util/naming"
)

// Default network layout of every host.
const (
	AddressSpace  = "10.10.0.0/16"
	Subnet1Name   = "subnet1"
	Subnet1Prefix = "10.10.1.0/24"
	Subnet2Name   = "subnet2"
	Subnet2Prefix = "10.10.2.0/24"
	IPConfigName  = "default-config"

	PublicIPSKU  = "Standard"
	PublicIPTier = "Regional"
)

// Default VM shape.
const (
	DefaultSize          = "Standard_B4ms"
	AdminUsername        = "tirekicker"
	SSHKeyPath           = "/home/tirekicker/.ssh/authorized_keys"
	OSDiskCaching        = "ReadWrite"
	OSDiskStorageAccount = "Standard_LRS"
)

// DefaultImage is Ubuntu Server 16.04 LTS.
var DefaultImage = azure.ImageReference{
	Publisher: "Canonical",
	Offer:     "UbuntuServer",
	SKU:       "16.04-LTS",
	Version:   "latest",
}

// Name prefixes used when a caller leaves a name empty.
const (
	prefixNetwork   = "vnet"
	prefixAddress   = "pip"
	prefixInterface = "nic"
	prefixMachine   = "vm"
)

// Infra is the subset of the provider a Factory needs.
type Infra interface {
	azure.NetworkManager
	azure.ComputeManager
}

// Factory creates hosts and their networking in one location.
type Factory struct {
	infra    Infra
	location string
	image    azure.ImageReference
	size     string
	adminKey string
	src      naming.Source
	observer provisioning.Observer
}

// Option is a functional option for configuring a Factory.
type Option func(*Factory)

// WithImage overrides the marketplace image.
func WithImage(image azure.ImageReference) Option {
	return func(f *Factory) {
		f.image = image
	}
}

// WithSize overrides the VM size.
func WithSize(size string) Option {
	return func(f *Factory) {
		f.size = size
	}
}

// WithAdminKey overrides the embedded admin public key.
func WithAdminKey(key string) Option {
	return func(f *Factory) {
		f.adminKey = key
	}
}

// WithSource sets the randomness used for generated names.
func WithSource(src naming.Source) Option {
	return func(f *Factory) {
		f.src = src
	}
}

// WithObserver reports resource events to observer.
func WithObserver(observer provisioning.Observer) Option {
	return func(f *Factory) {
		f.observer = observer
	}
}

// NewFactory creates a Factory placing resources in location.
func NewFactory(infra Infra, location string, opts ...Option) *Factory {
	f := &Factory{
		infra:    infra,
		location: location,
		image:    DefaultImage,
		size:     DefaultSize,
		adminKey: keygen.DefaultAdminKey(),
		observer: provisioning.NewNopObserver(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) nameOr(name, prefix string) string {
	if name != "" {
		return name
	}
	return naming.CreateName(f.src, prefix)
}

// CreateVirtualNetwork creates a network with two subnets. An empty name
// is replaced by a generated one.
func (f *Factory) CreateVirtualNetwork(ctx context.Context, group, name string) (*azure.VirtualNetwork, error) {
	name = f.nameOr(name, prefixNetwork)
	provisioning.LogResourceCreating(f.observer, phase, "virtual network", name)

	vnet, err := f.infra.CreateVirtualNetwork(ctx, group, azure.VirtualNetworkSpec{
		Name:         name,
		Location:     f.location,
		AddressSpace: []string{AddressSpace},
		Subnets: []azure.SubnetSpec{
			{Name: Subnet1Name, AddressPrefix: Subnet1Prefix},
			{Name: Subnet2Name, AddressPrefix: Subnet2Prefix},
		},
	})
	if err != nil {
		return nil, provisioning.NewProvisionError(name, fmt.Errorf("failed to create virtual network: %w", err))
	}

	provisioning.LogResourceCreated(f.observer, phase, "virtual network", vnet.Name, vnet.ID)
	return vnet, nil
}

// CreatePublicAddress creates a static public IP whose DNS label is its
// name, then reads it back so the address value is populated.
func (f *Factory) CreatePublicAddress(ctx context.Context, group, name string) (*azure.PublicIPAddress, error) {
	name = f.nameOr(name, prefixAddress)
	provisioning.LogResourceCreating(f.observer, phase, "public IP", name)

	if _, err := f.infra.CreatePublicIPAddress(ctx, group, azure.PublicIPAddressSpec{
		Name:        name,
		Location:    f.location,
		DomainLabel: name,
		Static:      true,
		SKU:         PublicIPSKU,
		Tier:        PublicIPTier,
	}); err != nil {
		return nil, provisioning.NewProvisionError(name, fmt.Errorf("failed to create public IP: %w", err))
	}

	address, err := f.infra.GetPublicIPAddress(ctx, group, name)
	if err != nil {
		return nil, provisioning.NewProvisionError(name, fmt.Errorf("failed to read public IP: %w", err))
	}

	provisioning.LogResourceCreated(f.observer, phase, "public IP", address.Name, address.ID,
		map[string]string{"ip": address.IPAddress})
	return address, nil
}

// CreateNetworkInterface creates a NIC in subnetID bound to addressID.
func (f *Factory) CreateNetworkInterface(ctx context.Context, group, subnetID, addressID, name string) (*azure.NetworkInterface, error) {
	name = f.nameOr(name, prefixInterface)
	provisioning.LogResourceCreating(f.observer, phase, "network interface", name)

	nic, err := f.infra.CreateNetworkInterface(ctx, group, azure.NetworkInterfaceSpec{
		Name:              name,
		Location:          f.location,
		IPConfigName:      IPConfigName,
		SubnetID:          subnetID,
		PublicIPAddressID: addressID,
	})
	if err != nil {
		return nil, provisioning.NewProvisionError(name, fmt.Errorf("failed to create network interface: %w", err))
	}

	provisioning.LogResourceCreated(f.observer, phase, "network interface", nic.Name, nic.ID)
	return nic, nil
}

// BuildDefaultComputeSpec returns the default Linux VM spec. The spec has no
// network interface; callers attach one before CreateVirtualMachine.
func (f *Factory) BuildDefaultComputeSpec(group, vmName string) azure.VirtualMachineSpec {
	return azure.VirtualMachineSpec{
		Name:     f.nameOr(vmName, prefixMachine),
		Location: f.location,
		Size:     f.size,
		Image:    f.image,
		OSDisk: azure.OSDiskSpec{
			Caching:            OSDiskCaching,
			StorageAccountType: OSDiskStorageAccount,
		},
		AdminUsername:       AdminUsername,
		SSHKeyPath:          SSHKeyPath,
		SSHPublicKey:        f.adminKey,
		DisablePasswordAuth: true,
		Tags:                map[string]string{"resource-group": group},
	}
}

// CreateVirtualMachine creates the VM described by spec.
func (f *Factory) CreateVirtualMachine(ctx context.Context, group string, spec azure.VirtualMachineSpec) (*azure.VirtualMachine, error) {
	if len(spec.NetworkInterfaces) == 0 {
		return nil, provisioning.NewProvisionError(spec.Name, azure.ErrNoNetworkInterface)
	}
	provisioning.LogResourceCreating(f.observer, phase, "virtual machine", spec.Name)

	vm, err := f.infra.CreateVirtualMachine(ctx, group, spec)
	if err != nil {
		return nil, provisioning.NewProvisionError(spec.Name, fmt.Errorf("failed to create virtual machine: %w", err))
	}

	provisioning.LogResourceCreated(f.observer, phase, "virtual machine", vm.Name, vm.ID,
		map[string]string{"size": vm.Size})
	return vm, nil
}
