package webapp

import (
	"fmt"
	"time"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// AgreementKey is the legal agreement accepted for the domain purchase.
const AgreementKey = "key1"

// DefaultContact returns the registrant contact used for every domain role.
func DefaultContact(email string) azure.Contact {
	return azure.Contact{
		Email:        email,
		FirstName:    "test",
		LastName:     "test",
		Phone:        "+86.18800001111",
		JobTitle:     "Billing",
		Organization: "Microsoft Inc.",
		Address: azure.Address{
			Line1:      "shanghai",
			City:       "shanghai",
			State:      "shanghai",
			Country:    "CN",
			PostalCode: "180000",
		},
	}
}

// DomainSpec builds the purchase request for the run's domain.
func DomainSpec(cfg *config.Config, zone string, now time.Time) azure.DomainSpec {
	return azure.DomainSpec{
		Name:          naming.Domain(zone),
		Contact:       DefaultContact(cfg.ContactEmail),
		Privacy:       true,
		AgreementKeys: []string{AgreementKey},
		AgreedBy:      cfg.ConsentIP,
		AgreedAt:      now.UTC(),
	}
}

// CustomDomainPhase buys the App Service domain and serves it from the
// root zone.
type CustomDomainPhase struct {
	now func() time.Time
}

// NewCustomDomainPhase creates the custom domain phase.
func NewCustomDomainPhase() *CustomDomainPhase {
	return &CustomDomainPhase{now: time.Now}
}

// Name implements the provisioning.Phase interface.
func (p *CustomDomainPhase) Name() string {
	return PhaseCustomDomain
}

// Provision implements the provisioning.Phase interface.
func (p *CustomDomainPhase) Provision(ctx *provisioning.Context) error {
	zone := ctx.State.RootZone
	if zone == nil {
		return provisioning.NewProvisionError(ctx.Run.Names.Zone, fmt.Errorf("root zone not created"))
	}

	spec := DomainSpec(ctx.Config, zone.Name, p.now())
	provisioning.LogResourceCreating(ctx.Observer, PhaseCustomDomain, "app service domain", spec.Name)

	domain, err := ctx.Infra.CreateDomain(ctx, ctx.Group(), spec)
	if err != nil {
		return provisioning.NewProvisionError(spec.Name, fmt.Errorf("failed to create app service domain: %w", err))
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseCustomDomain, "app service domain", domain.Name, domain.ID)

	ctx.Observer.Printf("[%s] Binding %s to DNS zone %s...", PhaseCustomDomain, domain.Name, zone.Name)
	bound, err := ctx.Infra.BindDomainToZone(ctx, ctx.Group(), domain.Name, zone.ID)
	if err != nil {
		return provisioning.NewProvisionError(spec.Name, fmt.Errorf("failed to bind domain to DNS zone: %w", err))
	}
	ctx.State.Domain = bound
	return nil
}
