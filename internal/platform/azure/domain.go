package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"

	"github.com/imamik/azdns/internal/util/ptr"
)

// DomainLocation is the location of every App Service domain.
const DomainLocation = "global"

// CreateDomain purchases an App Service domain and waits for the order to
// complete. The same contact is used for every contact role.
func (c *RealClient) CreateDomain(ctx context.Context, group string, spec DomainSpec) (*Domain, error) {
	resp, err := (&CreateOperation[armappservice.DomainsClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "domain",
		Begin: func(ctx context.Context) (*runtime.Poller[armappservice.DomainsClientCreateOrUpdateResponse], error) {
			return c.domains.BeginCreateOrUpdate(ctx, group, spec.Name, domainToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return domainFromSDK(group, &resp.Domain), nil
}

// BindDomainToZone patches the domain to be served by an Azure DNS zone.
func (c *RealClient) BindDomainToZone(ctx context.Context, group, domain, zoneID string) (*Domain, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.domains.Update(ctx, group, domain, armappservice.DomainPatchResource{
		Properties: &armappservice.DomainPatchResourceProperties{
			DNSType:   to.Ptr(armappservice.DNSTypeAzureDNS),
			DNSZoneID: to.Ptr(zoneID),
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to bind domain %q to zone: %w", domain, err)
	}
	return domainFromSDK(group, &resp.Domain), nil
}

func contactToSDK(ct Contact) *armappservice.Contact {
	return &armappservice.Contact{
		Email:        to.Ptr(ct.Email),
		NameFirst:    to.Ptr(ct.FirstName),
		NameLast:     to.Ptr(ct.LastName),
		Phone:        to.Ptr(ct.Phone),
		JobTitle:     to.Ptr(ct.JobTitle),
		Organization: to.Ptr(ct.Organization),
		AddressMailing: &armappservice.Address{
			Address1:   to.Ptr(ct.Address.Line1),
			City:       to.Ptr(ct.Address.City),
			State:      to.Ptr(ct.Address.State),
			Country:    to.Ptr(ct.Address.Country),
			PostalCode: to.Ptr(ct.Address.PostalCode),
		},
	}
}

func domainToSDK(spec DomainSpec) armappservice.Domain {
	contact := contactToSDK(spec.Contact)
	return armappservice.Domain{
		Location: to.Ptr(DomainLocation),
		Properties: &armappservice.DomainProperties{
			ContactAdmin:      contact,
			ContactBilling:    contact,
			ContactRegistrant: contact,
			ContactTech:       contact,
			Privacy:           to.Ptr(spec.Privacy),
			AutoRenew:         to.Ptr(spec.AutoRenew),
			Consent: &armappservice.DomainPurchaseConsent{
				AgreementKeys: ptr.StringPtrs(spec.AgreementKeys),
				AgreedBy:      to.Ptr(spec.AgreedBy),
				AgreedAt:      to.Ptr(spec.AgreedAt),
			},
		},
	}
}

func domainFromSDK(group string, d *armappservice.Domain) *Domain {
	out := &Domain{
		Resource: Resource{
			ID:            ptr.Deref(d.ID),
			Name:          ptr.Deref(d.Name),
			Location:      ptr.Deref(d.Location),
			ResourceGroup: group,
		},
	}
	if p := d.Properties; p != nil {
		if p.DNSType != nil {
			out.DNSType = string(*p.DNSType)
		}
		out.DNSZoneID = ptr.Deref(p.DNSZoneID)
	}
	return out
}
