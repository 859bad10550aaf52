package azure

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"

	"github.com/imamik/azdns/internal/util/ptr"
)

// ErrNoNetworkInterface is returned for a VM spec without a network interface.
var ErrNoNetworkInterface = errors.New("virtual machine needs at least one network interface")

// CreateVirtualMachine creates a Linux VM and waits until it is provisioned.
func (c *RealClient) CreateVirtualMachine(ctx context.Context, group string, spec VirtualMachineSpec) (*VirtualMachine, error) {
	if len(spec.NetworkInterfaces) == 0 {
		return nil, ErrNoNetworkInterface
	}

	resp, err := (&CreateOperation[armcompute.VirtualMachinesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "virtual machine",
		Begin: func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], error) {
			return c.vms.BeginCreateOrUpdate(ctx, group, spec.Name, virtualMachineToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return virtualMachineFromSDK(group, &resp.VirtualMachine), nil
}

func virtualMachineToSDK(spec VirtualMachineSpec) armcompute.VirtualMachine {
	nics := make([]*armcompute.NetworkInterfaceReference, 0, len(spec.NetworkInterfaces))
	for _, ref := range spec.NetworkInterfaces {
		nics = append(nics, &armcompute.NetworkInterfaceReference{
			ID: to.Ptr(ref.ID),
			Properties: &armcompute.NetworkInterfaceReferenceProperties{
				Primary: to.Ptr(ref.Primary),
			},
		})
	}

	return armcompute.VirtualMachine{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(spec.Size)),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: &armcompute.ImageReference{
					Publisher: to.Ptr(spec.Image.Publisher),
					Offer:     to.Ptr(spec.Image.Offer),
					SKU:       to.Ptr(spec.Image.SKU),
					Version:   to.Ptr(spec.Image.Version),
				},
				OSDisk: &armcompute.OSDisk{
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					OSType:       to.Ptr(armcompute.OperatingSystemTypesLinux),
					Caching:      to.Ptr(armcompute.CachingTypes(spec.OSDisk.Caching)),
					ManagedDisk: &armcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(armcompute.StorageAccountTypes(spec.OSDisk.StorageAccountType)),
					},
				},
			},
			OSProfile: &armcompute.OSProfile{
				ComputerName:  to.Ptr(spec.Name),
				AdminUsername: to.Ptr(spec.AdminUsername),
				LinuxConfiguration: &armcompute.LinuxConfiguration{
					DisablePasswordAuthentication: to.Ptr(spec.DisablePasswordAuth),
					SSH: &armcompute.SSHConfiguration{
						PublicKeys: []*armcompute.SSHPublicKey{{
							Path:    to.Ptr(spec.SSHKeyPath),
							KeyData: to.Ptr(spec.SSHPublicKey),
						}},
					},
				},
			},
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: nics,
			},
		},
	}
}

func virtualMachineFromSDK(group string, vm *armcompute.VirtualMachine) *VirtualMachine {
	out := &VirtualMachine{
		Resource: Resource{
			ID:            ptr.Deref(vm.ID),
			Name:          ptr.Deref(vm.Name),
			Location:      ptr.Deref(vm.Location),
			ResourceGroup: group,
		},
	}
	p := vm.Properties
	if p == nil {
		return out
	}
	out.ProvisioningState = ptr.Deref(p.ProvisioningState)
	if p.HardwareProfile != nil && p.HardwareProfile.VMSize != nil {
		out.Size = string(*p.HardwareProfile.VMSize)
	}
	if p.NetworkProfile != nil {
		for _, ref := range p.NetworkProfile.NetworkInterfaces {
			if ref != nil {
				out.NetworkInterfaceIDs = append(out.NetworkInterfaceIDs, ptr.Deref(ref.ID))
			}
		}
	}
	return out
}
