package compute

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/platform/azure/fakes"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/keygen"
)

func fixedSource(int) int { return 42 }

func TestFactory_CreateVirtualNetwork(t *testing.T) {
	t.Parallel()
	var got azure.VirtualNetworkSpec
	mock := &fakes.MockClient{
		CreateVirtualNetworkFunc: func(_ context.Context, _ string, spec azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error) {
			got = spec
			vnet := &azure.VirtualNetwork{Resource: azure.Resource{Name: spec.Name}}
			for _, s := range spec.Subnets {
				vnet.Subnets = append(vnet.Subnets, azure.Subnet{Name: s.Name, AddressPrefix: s.AddressPrefix})
			}
			return vnet, nil
		},
	}
	f := NewFactory(mock, "eastus")

	vnet, err := f.CreateVirtualNetwork(context.Background(), "rg", "vnet1-1")
	require.NoError(t, err)

	assert.Equal(t, "vnet1-1", got.Name)
	assert.Equal(t, "eastus", got.Location)
	assert.Equal(t, []string{"10.10.0.0/16"}, got.AddressSpace)
	assert.Equal(t, []azure.SubnetSpec{
		{Name: "subnet1", AddressPrefix: "10.10.1.0/24"},
		{Name: "subnet2", AddressPrefix: "10.10.2.0/24"},
	}, got.Subnets)
	require.Len(t, vnet.Subnets, 2)
}

func TestFactory_GeneratesMissingNames(t *testing.T) {
	t.Parallel()
	f := NewFactory(&fakes.MockClient{}, "eastus", WithSource(fixedSource))
	ctx := context.Background()

	vnet, err := f.CreateVirtualNetwork(ctx, "rg", "")
	require.NoError(t, err)
	assert.Equal(t, "vnet42", vnet.Name)

	pip, err := f.CreatePublicAddress(ctx, "rg", "")
	require.NoError(t, err)
	assert.Equal(t, "pip42", pip.Name)

	nic, err := f.CreateNetworkInterface(ctx, "rg", "subnet", pip.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "nic42", nic.Name)

	assert.Equal(t, "vm42", f.BuildDefaultComputeSpec("rg", "").Name)
}

func TestFactory_CreatePublicAddress(t *testing.T) {
	t.Parallel()
	var created azure.PublicIPAddressSpec
	var reads int
	mock := &fakes.MockClient{
		CreatePublicIPAddressFunc: func(_ context.Context, group string, spec azure.PublicIPAddressSpec) (*azure.PublicIPAddress, error) {
			created = spec
			return &azure.PublicIPAddress{Resource: azure.Resource{ID: "/pip", Name: spec.Name, ResourceGroup: group}}, nil
		},
		GetPublicIPAddressFunc: func(_ context.Context, group, name string) (*azure.PublicIPAddress, error) {
			reads++
			return &azure.PublicIPAddress{Resource: azure.Resource{ID: "/pip", Name: name, ResourceGroup: group}, IPAddress: "198.51.100.7"}, nil
		},
	}
	f := NewFactory(mock, "westeurope")

	pip, err := f.CreatePublicAddress(context.Background(), "rg", "pip1-9")
	require.NoError(t, err)

	assert.True(t, created.Static)
	assert.Equal(t, "Standard", created.SKU)
	assert.Equal(t, "Regional", created.Tier)
	assert.Equal(t, "pip1-9", created.DomainLabel)
	assert.Equal(t, "westeurope", created.Location)
	assert.Equal(t, 1, reads)
	assert.Equal(t, "198.51.100.7", pip.IPAddress)
}

func TestFactory_CreateNetworkInterface(t *testing.T) {
	t.Parallel()
	var got azure.NetworkInterfaceSpec
	mock := &fakes.MockClient{
		CreateNetworkInterfaceFunc: func(_ context.Context, _ string, spec azure.NetworkInterfaceSpec) (*azure.NetworkInterface, error) {
			got = spec
			return &azure.NetworkInterface{Resource: azure.Resource{Name: spec.Name}}, nil
		},
	}
	f := NewFactory(mock, "eastus")

	_, err := f.CreateNetworkInterface(context.Background(), "rg", "/subnet", "/pip", "nic1-1")
	require.NoError(t, err)
	assert.Equal(t, "default-config", got.IPConfigName)
	assert.Equal(t, "/subnet", got.SubnetID)
	assert.Equal(t, "/pip", got.PublicIPAddressID)
}

func TestFactory_BuildDefaultComputeSpec(t *testing.T) {
	t.Parallel()
	f := NewFactory(&fakes.MockClient{}, "eastus")

	spec := f.BuildDefaultComputeSpec("rg", "vm1-1")

	assert.Equal(t, "vm1-1", spec.Name)
	assert.Equal(t, "eastus", spec.Location)
	assert.Equal(t, "Standard_B4ms", spec.Size)
	assert.Equal(t, azure.ImageReference{Publisher: "Canonical", Offer: "UbuntuServer", SKU: "16.04-LTS", Version: "latest"}, spec.Image)
	assert.Equal(t, azure.OSDiskSpec{Caching: "ReadWrite", StorageAccountType: "Standard_LRS"}, spec.OSDisk)
	assert.Equal(t, "tirekicker", spec.AdminUsername)
	assert.Equal(t, "/home/tirekicker/.ssh/authorized_keys", spec.SSHKeyPath)
	assert.Equal(t, keygen.DefaultAdminKey(), spec.SSHPublicKey)
	assert.True(t, spec.DisablePasswordAuth)
	assert.Empty(t, spec.NetworkInterfaces)
}

func TestFactory_Options(t *testing.T) {
	t.Parallel()
	image := azure.ImageReference{Publisher: "Canonical", Offer: "ubuntu-24_04-lts", SKU: "server", Version: "latest"}
	f := NewFactory(&fakes.MockClient{}, "eastus",
		WithImage(image),
		WithSize("Standard_B2s"),
		WithAdminKey("ssh-ed25519 AAAA test"),
	)

	spec := f.BuildDefaultComputeSpec("rg", "vm")
	assert.Equal(t, image, spec.Image)
	assert.Equal(t, "Standard_B2s", spec.Size)
	assert.Equal(t, "ssh-ed25519 AAAA test", spec.SSHPublicKey)
}

func TestFactory_CreateVirtualMachine_RequiresInterface(t *testing.T) {
	t.Parallel()
	called := false
	mock := &fakes.MockClient{
		CreateVirtualMachineFunc: func(context.Context, string, azure.VirtualMachineSpec) (*azure.VirtualMachine, error) {
			called = true
			return &azure.VirtualMachine{}, nil
		},
	}
	f := NewFactory(mock, "eastus")

	_, err := f.CreateVirtualMachine(context.Background(), "rg", f.BuildDefaultComputeSpec("rg", "vm1"))

	require.ErrorIs(t, err, azure.ErrNoNetworkInterface)
	var pe *provisioning.ProvisionError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "vm1", pe.Resource)
	assert.False(t, called)
}

func TestFactory_ProviderErrorsBecomeProvisionErrors(t *testing.T) {
	t.Parallel()
	cause := errors.New("quota exceeded")

	tests := []struct {
		name string
		mock *fakes.MockClient
		call func(f *Factory) error
	}{
		{
			name: "virtual network",
			mock: &fakes.MockClient{CreateVirtualNetworkFunc: func(context.Context, string, azure.VirtualNetworkSpec) (*azure.VirtualNetwork, error) {
				return nil, cause
			}},
			call: func(f *Factory) error { _, err := f.CreateVirtualNetwork(context.Background(), "rg", "vnet"); return err },
		},
		{
			name: "public IP create",
			mock: &fakes.MockClient{CreatePublicIPAddressFunc: func(context.Context, string, azure.PublicIPAddressSpec) (*azure.PublicIPAddress, error) {
				return nil, cause
			}},
			call: func(f *Factory) error { _, err := f.CreatePublicAddress(context.Background(), "rg", "pip"); return err },
		},
		{
			name: "public IP read back",
			mock: &fakes.MockClient{GetPublicIPAddressFunc: func(context.Context, string, string) (*azure.PublicIPAddress, error) {
				return nil, cause
			}},
			call: func(f *Factory) error { _, err := f.CreatePublicAddress(context.Background(), "rg", "pip"); return err },
		},
		{
			name: "network interface",
			mock: &fakes.MockClient{CreateNetworkInterfaceFunc: func(context.Context, string, azure.NetworkInterfaceSpec) (*azure.NetworkInterface, error) {
				return nil, cause
			}},
			call: func(f *Factory) error {
				_, err := f.CreateNetworkInterface(context.Background(), "rg", "s", "p", "nic")
				return err
			},
		},
		{
			name: "virtual machine",
			mock: &fakes.MockClient{CreateVirtualMachineFunc: func(context.Context, string, azure.VirtualMachineSpec) (*azure.VirtualMachine, error) {
				return nil, cause
			}},
			call: func(f *Factory) error {
				_, err := f.CreateHost(context.Background(), "rg", HostNames{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.call(NewFactory(tt.mock, "eastus"))
			require.ErrorIs(t, err, cause)
			var pe *provisioning.ProvisionError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestFactory_CreateHost_AgainstFake(t *testing.T) {
	t.Parallel()
	provider := fakes.New()
	ctx := context.Background()
	_, err := provider.CreateResourceGroup(ctx, "rg", "eastus", nil)
	require.NoError(t, err)

	f := NewFactory(provider, "eastus")
	host, err := f.CreateHost(ctx, "rg", HostNames{
		Network:   "vnet1-7",
		Address:   "pip1-7",
		Interface: "nic1-7",
		Machine:   "vm1-7",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		fakes.OpCreateVirtualNetwork,
		fakes.OpCreatePublicIPAddress,
		fakes.OpGetPublicIPAddress,
		fakes.OpCreateNetworkInterface,
		fakes.OpCreateVirtualMachine,
	}, provider.Ops()[1:])

	assert.NotEmpty(t, host.IP())
	assert.True(t, strings.HasSuffix(host.Interface.SubnetID, "/subnets/subnet1"))
	assert.Equal(t, host.Address.ID, host.Interface.PublicIPAddressID)
	assert.Equal(t, []string{host.Interface.ID}, host.Machine.NetworkInterfaceIDs)
}

func TestHostNames(t *testing.T) {
	t.Parallel()
	run := provisioning.NewRunContext("sub", "eastus", func(int) int { return 5 })

	assert.Equal(t, HostNames{Network: "vnet1-5", Address: "pip1-5", Interface: "nic1-5", Machine: "vm1-5"}, PrimaryHostNames(run.Names))
	assert.Equal(t, HostNames{Network: "vnet2-5", Address: "pip2-5", Interface: "nic2-5", Machine: "vm2-5"}, PartnerHostNames(run.Names))
}
