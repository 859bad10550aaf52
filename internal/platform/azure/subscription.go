package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/imamik/azdns/internal/util/ptr"
)

// GetSubscription resolves a subscription by ID.
func (c *RealClient) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.subscriptions.Get(ctx, subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %q: %w", subscriptionID, err)
	}
	return subscriptionFromSDK(&resp.Subscription), nil
}

func subscriptionFromSDK(s *armsubscriptions.Subscription) *Subscription {
	out := &Subscription{
		Resource: Resource{
			ID:   ptr.Deref(s.ID),
			Name: ptr.Deref(s.DisplayName),
		},
		SubscriptionID: ptr.Deref(s.SubscriptionID),
		DisplayName:    ptr.Deref(s.DisplayName),
	}
	if s.State != nil {
		out.State = string(*s.State)
	}
	return out
}
