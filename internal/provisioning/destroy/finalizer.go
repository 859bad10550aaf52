package destroy

import (
	"context"
	"time"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
)

const phase = "finalize"

// Finalizer deletes a run's resource group.
type Finalizer struct {
	infra    azure.ResourceGroupManager
	observer provisioning.Observer
	timeout  time.Duration
}

// NewFinalizer creates a Finalizer. A zero timeout means no deadline.
func NewFinalizer(infra azure.ResourceGroupManager, observer provisioning.Observer, timeout time.Duration) *Finalizer {
	if observer == nil {
		observer = provisioning.NewNopObserver()
	}
	return &Finalizer{infra: infra, observer: observer, timeout: timeout}
}

// Finalize deletes group if created is true. It runs detached from ctx's
// cancellation so an interrupted run is still cleaned up. A failed delete
// yields CleanupFailed and a *provisioning.CleanupError.
func (f *Finalizer) Finalize(ctx context.Context, group string, created bool) (provisioning.CleanupStatus, error) {
	if !created {
		f.observer.Printf("[%s] Nothing to clean up", phase)
		return provisioning.NothingToCleanUp, nil
	}

	ctx = context.WithoutCancel(ctx)
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	provisioning.LogResourceDeleting(f.observer, phase, "resource group", group)
	if err := f.infra.DeleteResourceGroup(ctx, group); err != nil {
		cleanupErr := &provisioning.CleanupError{ResourceGroup: group, Err: err}
		f.observer.Event(provisioning.Event{
			Type:     provisioning.EventCleanupFailed,
			Phase:    phase,
			Resource: group,
			Message:  "resource group delete failed; remove it manually",
			Err:      cleanupErr,
		})
		return provisioning.CleanupFailed, cleanupErr
	}

	provisioning.LogResourceDeleted(f.observer, phase, "resource group", group)
	return provisioning.CleanedUp, nil
}
