package webapp

import (
	"fmt"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
)

// Phase names.
const (
	PhaseWebApp          = "web-app"
	PhaseCustomDomain    = "custom-domain"
	PhaseHostNameBinding = "host-name-binding"
)

// PlanSKU is the pricing tier of the App Service plan.
var PlanSKU = azure.SKU{
	Name:     "P1",
	Tier:     "Premium",
	Size:     "P1",
	Family:   "P",
	Capacity: 1,
}

// PlanKind is the kind of the App Service plan.
const PlanKind = "app"

// WebAppPhase creates the App Service plan and a web app running on it.
type WebAppPhase struct{}

// NewWebAppPhase creates the web app phase.
func NewWebAppPhase() *WebAppPhase {
	return &WebAppPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *WebAppPhase) Name() string {
	return PhaseWebApp
}

// Provision implements the provisioning.Phase interface.
func (p *WebAppPhase) Provision(ctx *provisioning.Context) error {
	names := ctx.Run.Names

	provisioning.LogResourceCreating(ctx.Observer, PhaseWebApp, "app service plan", names.AppServicePlan)
	plan, err := ctx.Infra.CreateAppServicePlan(ctx, ctx.Group(), azure.AppServicePlanSpec{
		Name:     names.AppServicePlan,
		Location: ctx.Run.Location,
		Kind:     PlanKind,
		SKU:      PlanSKU,
	})
	if err != nil {
		return provisioning.NewProvisionError(names.AppServicePlan, fmt.Errorf("failed to create app service plan: %w", err))
	}
	ctx.State.Plan = plan
	provisioning.LogResourceCreated(ctx.Observer, PhaseWebApp, "app service plan", plan.Name, plan.ID)

	provisioning.LogResourceCreating(ctx.Observer, PhaseWebApp, "web app", names.WebApp)
	app, err := ctx.Infra.CreateWebApp(ctx, ctx.Group(), azure.WebAppSpec{
		Name:     names.WebApp,
		Location: ctx.Run.Location,
		PlanID:   plan.ID,
	})
	if err != nil {
		return provisioning.NewProvisionError(names.WebApp, fmt.Errorf("failed to create web app: %w", err))
	}
	ctx.State.WebApp = app
	provisioning.LogResourceCreated(ctx.Observer, PhaseWebApp, "web app", app.Name, app.ID,
		map[string]string{"default_host_name": app.DefaultHostName})
	return nil
}
