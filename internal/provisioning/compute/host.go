package compute

import (
	"context"
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

const phase = "compute"

// HostNames names the four resources of one host. Empty fields are generated.
type HostNames struct {
	Network   string
	Address   string
	Interface string
	Machine   string
}

// PrimaryHostNames returns the names of the run's first host.
func PrimaryHostNames(n naming.Names) HostNames {
	return HostNames{
		Network:   n.PrimaryNetwork,
		Address:   n.PrimaryAddress,
		Interface: n.PrimaryInterface,
		Machine:   n.PrimaryMachine,
	}
}

// PartnerHostNames returns the names of the run's second host.
func PartnerHostNames(n naming.Names) HostNames {
	return HostNames{
		Network:   n.PartnerNetwork,
		Address:   n.PartnerAddress,
		Interface: n.PartnerInterface,
		Machine:   n.PartnerMachine,
	}
}

// CreateHost creates a network, a public address, a NIC in the first subnet
// and a VM using that NIC, in that order.
func (f *Factory) CreateHost(ctx context.Context, group string, names HostNames) (*provisioning.Host, error) {
	vnet, err := f.CreateVirtualNetwork(ctx, group, names.Network)
	if err != nil {
		return nil, err
	}
	if len(vnet.Subnets) == 0 {
		return nil, provisioning.NewProvisionError(vnet.Name, fmt.Errorf("virtual network has no subnets"))
	}

	address, err := f.CreatePublicAddress(ctx, group, names.Address)
	if err != nil {
		return nil, err
	}

	nic, err := f.CreateNetworkInterface(ctx, group, vnet.Subnets[0].ID, address.ID, names.Interface)
	if err != nil {
		return nil, err
	}

	spec := f.BuildDefaultComputeSpec(group, names.Machine)
	spec.NetworkInterfaces = []azure.InterfaceRef{{ID: nic.ID, Primary: true}}

	vm, err := f.CreateVirtualMachine(ctx, group, spec)
	if err != nil {
		return nil, err
	}

	return &provisioning.Host{
		Network:   vnet,
		Address:   address,
		Interface: nic,
		Machine:   vm,
	}, nil
}
