package webapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/provisioning/propagation"
)

// HostNameBindingPhase binds the custom host name to the web app under the
// propagation policy.
type HostNameBindingPhase struct {
	policy *propagation.Policy
}

// NewHostNameBindingPhase creates the binding phase.
func NewHostNameBindingPhase(policy *propagation.Policy) *HostNameBindingPhase {
	return &HostNameBindingPhase{policy: policy}
}

// Name implements the provisioning.Phase interface.
func (p *HostNameBindingPhase) Name() string {
	return PhaseHostNameBinding
}

// Provision implements the provisioning.Phase interface.
func (p *HostNameBindingPhase) Provision(ctx *provisioning.Context) error {
	app := ctx.State.WebApp
	hostName := ctx.Run.HostName()
	if app == nil {
		return provisioning.NewProvisionError(hostName, fmt.Errorf("web app not created"))
	}

	analysis, err := ctx.Infra.AnalyzeCustomHostName(ctx, ctx.Group(), app.Name, hostName)
	if err != nil {
		return provisioning.NewProvisionError(hostName, fmt.Errorf("failed to analyze custom host name: %w", err))
	}
	ctx.State.HostNameAnalysis = analysis
	ctx.Observer.Printf("[%s] Host name %s analysis: verified=%t result=%s",
		PhaseHostNameBinding, hostName, analysis.Verified, analysis.VerificationResult)

	err = p.policy.Do(ctx, hostName, func(c context.Context) error {
		return ctx.Infra.BindHostName(c, ctx.Group(), app.Name, hostName)
	})
	if err != nil {
		var timeout *provisioning.PropagationTimeoutError
		if errors.As(err, &timeout) {
			return timeout
		}
		return provisioning.NewProvisionError(hostName, fmt.Errorf("failed to bind host name: %w", err))
	}

	ctx.State.HostNameBound = true
	ctx.Observer.Printf("[%s] Bound %s to %s", PhaseHostNameBinding, hostName, app.Name)
	return nil
}
