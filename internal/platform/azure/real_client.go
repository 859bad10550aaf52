package azure

import (
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/dns/armdns"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/imamik/azdns/internal/config"
)

// minPollFrequency is the lowest interval the SDK pollers accept.
const minPollFrequency = time.Second

// RealClient implements InfrastructureManager using the Azure Resource Manager API.
type RealClient struct {
	subscriptionID string
	timeouts       *config.Timeouts
	clientOptions  *arm.ClientOptions

	subscriptions  *armsubscriptions.Client
	resourceGroups *armresources.ResourceGroupsClient
	zones          *armdns.ZonesClient
	recordSets     *armdns.RecordSetsClient
	plans          *armappservice.PlansClient
	webApps        *armappservice.WebAppsClient
	domains        *armappservice.DomainsClient
	vnets          *armnetwork.VirtualNetworksClient
	publicIPs      *armnetwork.PublicIPAddressesClient
	interfaces     *armnetwork.InterfacesClient
	vms            *armcompute.VirtualMachinesClient
}

// Ensure interface compliance
var _ InfrastructureManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithClientOptions sets the ARM pipeline options (useful for testing with
// fake transports).
func WithClientOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.clientOptions = opts
	}
}

// NewCredential returns a service principal credential for the given tenant.
func NewCredential(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create client secret credential: %w", err)
	}
	return cred, nil
}

// NewRealClient creates a new RealClient scoped to one subscription.
func NewRealClient(subscriptionID string, cred azcore.TokenCredential, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		subscriptionID: subscriptionID,
		timeouts:       config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}
	timeouts := *c.timeouts
	if timeouts.PollFrequency < minPollFrequency {
		timeouts.PollFrequency = minPollFrequency
	}
	c.timeouts = &timeouts

	var err error
	if c.subscriptions, err = armsubscriptions.NewClient(cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}
	if c.resourceGroups, err = armresources.NewResourceGroupsClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.zones, err = armdns.NewZonesClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create zones client: %w", err)
	}
	if c.recordSets, err = armdns.NewRecordSetsClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create record sets client: %w", err)
	}
	if c.plans, err = armappservice.NewPlansClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create plans client: %w", err)
	}
	if c.webApps, err = armappservice.NewWebAppsClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create web apps client: %w", err)
	}
	if c.domains, err = armappservice.NewDomainsClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create domains client: %w", err)
	}
	if c.vnets, err = armnetwork.NewVirtualNetworksClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	if c.publicIPs, err = armnetwork.NewPublicIPAddressesClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create public IP addresses client: %w", err)
	}
	if c.interfaces, err = armnetwork.NewInterfacesClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create network interfaces client: %w", err)
	}
	if c.vms, err = armcompute.NewVirtualMachinesClient(subscriptionID, cred, c.clientOptions); err != nil {
		return nil, fmt.Errorf("failed to create virtual machines client: %w", err)
	}
	return c, nil
}

// SubscriptionID returns the subscription the client is scoped to.
func (c *RealClient) SubscriptionID() string {
	return c.subscriptionID
}
