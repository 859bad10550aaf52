package propagation

import "github.com/imamik/azdns/internal/provisioning"

const phase = "propagation-wait"

// WaitPhase runs Policy.Wait as a pipeline phase.
type WaitPhase struct {
	Policy *Policy
}

// NewWaitPhase creates a propagation wait phase.
func NewWaitPhase(policy *Policy) *WaitPhase {
	return &WaitPhase{Policy: policy}
}

// Name implements the provisioning.Phase interface.
func (p *WaitPhase) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *WaitPhase) Provision(ctx *provisioning.Context) error {
	ctx.Observer.Printf("[%s] Using %s propagation policy", phase, p.Policy)
	return p.Policy.Wait(ctx)
}
