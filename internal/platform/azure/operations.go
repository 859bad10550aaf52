package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/imamik/azdns/internal/util/retry"
)

// deleteRetries bounds how often a delete request is resent after a
// conflict or throttling response.
const deleteRetries = 3

// CreateOperation encapsulates create-and-wait logic for any long-running
// ARM resource. It bounds the whole operation by the create timeout and
// polls with the configured frequency.
//
// Usage example:
//
//	resp, err := (&CreateOperation[armnetwork.VirtualNetworksClientCreateOrUpdateResponse]{
//	    Name:         spec.Name,
//	    ResourceType: "virtual network",
//	    Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientCreateOrUpdateResponse], error) {
//	        return c.vnets.BeginCreateOrUpdate(ctx, group, spec.Name, params, nil)
//	    },
//	}).Execute(ctx, c)
type CreateOperation[T any] struct {
	Name         string
	ResourceType string

	// Begin starts the operation and returns its poller.
	Begin func(ctx context.Context) (*runtime.Poller[T], error)
}

// Execute starts the operation and blocks until it reaches a terminal state.
func (op *CreateOperation[T]) Execute(ctx context.Context, client *RealClient) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Create)
	defer cancel()

	return pollUntilDone(ctx, client, "create", op.ResourceType, op.Name, op.Begin)
}

// DeleteOperation encapsulates deletion logic for any long-running ARM resource.
// The operation is idempotent: it succeeds if the resource doesn't exist.
// Starting the delete is retried with backoff while the provider answers
// with a conflict or throttling error.
type DeleteOperation[T any] struct {
	Name         string
	ResourceType string

	// Begin starts the delete and returns its poller.
	Begin func(ctx context.Context) (*runtime.Poller[T], error)
}

// Execute performs the delete and waits for it to finish.
func (op *DeleteOperation[T]) Execute(ctx context.Context, client *RealClient) error {
	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Delete)
	defer cancel()

	begin := func(ctx context.Context) (*runtime.Poller[T], error) {
		var poller *runtime.Poller[T]
		err := retry.WithExponentialBackoff(ctx, func() error {
			var err error
			poller, err = op.Begin(ctx)
			return err
		},
			retry.WithMaxRetries(deleteRetries),
			retry.WithInitialDelay(client.timeouts.PollFrequency),
			retry.WithMaxDelay(4*client.timeouts.PollFrequency),
			retry.WithRetryIf(isTransientDeleteError),
		)
		return poller, err
	}

	_, err := pollUntilDone(ctx, client, "delete", op.ResourceType, op.Name, begin)
	if IsNotFound(err) {
		return nil
	}
	return err
}

func pollUntilDone[T any](ctx context.Context, client *RealClient, verb, resourceType, name string, begin func(context.Context) (*runtime.Poller[T], error)) (T, error) {
	var zero T

	poller, err := begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to %s %s %q: %w", verb, resourceType, name, err)
	}

	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: client.timeouts.PollFrequency,
	})
	if err != nil {
		return zero, fmt.Errorf("failed waiting for %s %q to %s: %w", resourceType, name, verb, err)
	}
	return resp, nil
}

// withCreateTimeout bounds a synchronous call by the create timeout.
func withCreateTimeout(ctx context.Context, client *RealClient) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, client.timeouts.Create)
}
