package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/imamik/azdns/internal/util/ptr"
)

// CreateResourceGroup creates or updates a resource group.
func (c *RealClient) CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (*ResourceGroup, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.resourceGroups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
		Tags:     toTags(tags),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource group %q: %w", name, err)
	}
	return resourceGroupFromSDK(&resp.ResourceGroup), nil
}

// DeleteResourceGroup deletes a resource group and waits for completion.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	return (&DeleteOperation[armresources.ResourceGroupsClientDeleteResponse]{
		Name:         name,
		ResourceType: "resource group",
		Begin: func(ctx context.Context) (*runtime.Poller[armresources.ResourceGroupsClientDeleteResponse], error) {
			return c.resourceGroups.BeginDelete(ctx, name, nil)
		},
	}).Execute(ctx, c)
}

func resourceGroupFromSDK(rg *armresources.ResourceGroup) *ResourceGroup {
	name := ptr.Deref(rg.Name)
	return &ResourceGroup{
		Resource: Resource{
			ID:            ptr.Deref(rg.ID),
			Name:          name,
			Location:      ptr.Deref(rg.Location),
			ResourceGroup: name,
		},
		Tags: fromTags(rg.Tags),
	}
}

func toTags(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		out[k] = to.Ptr(v)
	}
	return out
}

func fromTags(tags map[string]*string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = ptr.Deref(v)
	}
	return out
}
