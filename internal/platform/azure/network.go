package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/imamik/azdns/internal/util/ptr"
)

// CreateVirtualNetwork creates a virtual network with its subnets and waits for it.
func (c *RealClient) CreateVirtualNetwork(ctx context.Context, group string, spec VirtualNetworkSpec) (*VirtualNetwork, error) {
	resp, err := (&CreateOperation[armnetwork.VirtualNetworksClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "virtual network",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientCreateOrUpdateResponse], error) {
			return c.vnets.BeginCreateOrUpdate(ctx, group, spec.Name, virtualNetworkToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return virtualNetworkFromSDK(group, &resp.VirtualNetwork), nil
}

// CreatePublicIPAddress creates a public IP address and waits for it.
// Static addresses may not report their IP until read back.
func (c *RealClient) CreatePublicIPAddress(ctx context.Context, group string, spec PublicIPAddressSpec) (*PublicIPAddress, error) {
	resp, err := (&CreateOperation[armnetwork.PublicIPAddressesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "public IP address",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.PublicIPAddressesClientCreateOrUpdateResponse], error) {
			return c.publicIPs.BeginCreateOrUpdate(ctx, group, spec.Name, publicIPToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return publicIPFromSDK(group, &resp.PublicIPAddress), nil
}

// GetPublicIPAddress reads a public IP address.
func (c *RealClient) GetPublicIPAddress(ctx context.Context, group, name string) (*PublicIPAddress, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.publicIPs.Get(ctx, group, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get public IP address %q: %w", name, err)
	}
	return publicIPFromSDK(group, &resp.PublicIPAddress), nil
}

// CreateNetworkInterface creates a network interface and waits for it.
func (c *RealClient) CreateNetworkInterface(ctx context.Context, group string, spec NetworkInterfaceSpec) (*NetworkInterface, error) {
	resp, err := (&CreateOperation[armnetwork.InterfacesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "network interface",
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.InterfacesClientCreateOrUpdateResponse], error) {
			return c.interfaces.BeginCreateOrUpdate(ctx, group, spec.Name, networkInterfaceToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return networkInterfaceFromSDK(group, &resp.Interface), nil
}

func virtualNetworkToSDK(spec VirtualNetworkSpec) armnetwork.VirtualNetwork {
	subnets := make([]*armnetwork.Subnet, 0, len(spec.Subnets))
	for _, s := range spec.Subnets {
		subnets = append(subnets, &armnetwork.Subnet{
			Name: to.Ptr(s.Name),
			Properties: &armnetwork.SubnetPropertiesFormat{
				AddressPrefix: to.Ptr(s.AddressPrefix),
			},
		})
	}
	return armnetwork.VirtualNetwork{
		Location: to.Ptr(spec.Location),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: ptr.StringPtrs(spec.AddressSpace),
			},
			Subnets: subnets,
		},
	}
}

func virtualNetworkFromSDK(group string, vn *armnetwork.VirtualNetwork) *VirtualNetwork {
	out := &VirtualNetwork{
		Resource: Resource{
			ID:            ptr.Deref(vn.ID),
			Name:          ptr.Deref(vn.Name),
			Location:      ptr.Deref(vn.Location),
			ResourceGroup: group,
		},
	}
	p := vn.Properties
	if p == nil {
		return out
	}
	if p.AddressSpace != nil {
		out.AddressSpace = ptr.Strings(p.AddressSpace.AddressPrefixes)
	}
	for _, s := range p.Subnets {
		if s == nil {
			continue
		}
		subnet := Subnet{ID: ptr.Deref(s.ID), Name: ptr.Deref(s.Name)}
		if s.Properties != nil {
			subnet.AddressPrefix = ptr.Deref(s.Properties.AddressPrefix)
		}
		out.Subnets = append(out.Subnets, subnet)
	}
	return out
}

func publicIPToSDK(spec PublicIPAddressSpec) armnetwork.PublicIPAddress {
	allocation := armnetwork.IPAllocationMethodDynamic
	if spec.Static {
		allocation = armnetwork.IPAllocationMethodStatic
	}
	out := armnetwork.PublicIPAddress{
		Location: to.Ptr(spec.Location),
		Properties: &armnetwork.PublicIPAddressPropertiesFormat{
			PublicIPAllocationMethod: to.Ptr(allocation),
		},
	}
	if spec.DomainLabel != "" {
		out.Properties.DNSSettings = &armnetwork.PublicIPAddressDNSSettings{
			DomainNameLabel: to.Ptr(spec.DomainLabel),
		}
	}
	if spec.SKU != "" {
		out.SKU = &armnetwork.PublicIPAddressSKU{
			Name: to.Ptr(armnetwork.PublicIPAddressSKUName(spec.SKU)),
		}
		if spec.Tier != "" {
			out.SKU.Tier = to.Ptr(armnetwork.PublicIPAddressSKUTier(spec.Tier))
		}
	}
	return out
}

func publicIPFromSDK(group string, ip *armnetwork.PublicIPAddress) *PublicIPAddress {
	out := &PublicIPAddress{
		Resource: Resource{
			ID:            ptr.Deref(ip.ID),
			Name:          ptr.Deref(ip.Name),
			Location:      ptr.Deref(ip.Location),
			ResourceGroup: group,
		},
	}
	if p := ip.Properties; p != nil {
		out.IPAddress = ptr.Deref(p.IPAddress)
		if p.DNSSettings != nil {
			out.DomainLabel = ptr.Deref(p.DNSSettings.DomainNameLabel)
			out.FQDN = ptr.Deref(p.DNSSettings.Fqdn)
		}
	}
	return out
}

func networkInterfaceToSDK(spec NetworkInterfaceSpec) armnetwork.Interface {
	ipConfig := &armnetwork.InterfaceIPConfigurationPropertiesFormat{
		PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
		Subnet:                    &armnetwork.Subnet{ID: to.Ptr(spec.SubnetID)},
	}
	if spec.PublicIPAddressID != "" {
		ipConfig.PublicIPAddress = &armnetwork.PublicIPAddress{ID: to.Ptr(spec.PublicIPAddressID)}
	}
	return armnetwork.Interface{
		Location: to.Ptr(spec.Location),
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{{
				Name:       to.Ptr(spec.IPConfigName),
				Properties: ipConfig,
			}},
		},
	}
}

func networkInterfaceFromSDK(group string, nic *armnetwork.Interface) *NetworkInterface {
	out := &NetworkInterface{
		Resource: Resource{
			ID:            ptr.Deref(nic.ID),
			Name:          ptr.Deref(nic.Name),
			Location:      ptr.Deref(nic.Location),
			ResourceGroup: group,
		},
	}
	if nic.Properties == nil || len(nic.Properties.IPConfigurations) == 0 {
		return out
	}
	cfg := nic.Properties.IPConfigurations[0]
	if cfg == nil || cfg.Properties == nil {
		return out
	}
	out.PrivateIPAddress = ptr.Deref(cfg.Properties.PrivateIPAddress)
	if cfg.Properties.Subnet != nil {
		out.SubnetID = ptr.Deref(cfg.Properties.Subnet.ID)
	}
	if cfg.Properties.PublicIPAddress != nil {
		out.PublicIPAddressID = ptr.Deref(cfg.Properties.PublicIPAddress.ID)
	}
	return out
}
