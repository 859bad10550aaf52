package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"

	"github.com/imamik/azdns/internal/util/ptr"
)

// CreateAppServicePlan creates or updates an App Service plan and waits for it.
func (c *RealClient) CreateAppServicePlan(ctx context.Context, group string, spec AppServicePlanSpec) (*AppServicePlan, error) {
	resp, err := (&CreateOperation[armappservice.PlansClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "app service plan",
		Begin: func(ctx context.Context) (*runtime.Poller[armappservice.PlansClientCreateOrUpdateResponse], error) {
			return c.plans.BeginCreateOrUpdate(ctx, group, spec.Name, planToSDK(spec), nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return planFromSDK(group, &resp.Plan), nil
}

// CreateWebApp creates or updates a web app on an existing plan and waits for it.
func (c *RealClient) CreateWebApp(ctx context.Context, group string, spec WebAppSpec) (*WebApp, error) {
	resp, err := (&CreateOperation[armappservice.WebAppsClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: "web app",
		Begin: func(ctx context.Context) (*runtime.Poller[armappservice.WebAppsClientCreateOrUpdateResponse], error) {
			return c.webApps.BeginCreateOrUpdate(ctx, group, spec.Name, armappservice.Site{
				Location: to.Ptr(spec.Location),
				Properties: &armappservice.SiteProperties{
					ServerFarmID: to.Ptr(spec.PlanID),
				},
			}, nil)
		},
	}).Execute(ctx, c)
	if err != nil {
		return nil, err
	}
	return webAppFromSDK(group, &resp.Site), nil
}

// AnalyzeCustomHostName asks App Service whether the host name can be bound
// to the app. The analysis is informational; it never fails on an
// unverified host name.
func (c *RealClient) AnalyzeCustomHostName(ctx context.Context, group, app, hostName string) (*HostNameAnalysis, error) {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	resp, err := c.webApps.AnalyzeCustomHostname(ctx, group, app, &armappservice.WebAppsClientAnalyzeCustomHostnameOptions{
		HostName: to.Ptr(hostName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze host name %q for app %q: %w", hostName, app, err)
	}
	return analysisFromSDK(hostName, &resp.CustomHostnameAnalysisResult), nil
}

// BindHostName binds a custom host name to the app using an A record and
// a verified host name type. A rejection for missing verification records
// is reported as *HostNameNotVerifiedError.
func (c *RealClient) BindHostName(ctx context.Context, group, app, hostName string) error {
	ctx, cancel := withCreateTimeout(ctx, c)
	defer cancel()

	_, err := c.webApps.CreateOrUpdateHostNameBinding(ctx, group, app, hostName, hostNameBindingToSDK(app), nil)
	if err != nil {
		return fmt.Errorf("failed to bind host name %q to app %q: %w", hostName, app, asHostNameNotVerified(hostName, err))
	}
	return nil
}

func planToSDK(spec AppServicePlanSpec) armappservice.Plan {
	return armappservice.Plan{
		Location: to.Ptr(spec.Location),
		Kind:     to.Ptr(spec.Kind),
		SKU: &armappservice.SKUDescription{
			Name:     to.Ptr(spec.SKU.Name),
			Tier:     to.Ptr(spec.SKU.Tier),
			Size:     to.Ptr(spec.SKU.Size),
			Family:   to.Ptr(spec.SKU.Family),
			Capacity: to.Ptr(spec.SKU.Capacity),
		},
	}
}

func planFromSDK(group string, p *armappservice.Plan) *AppServicePlan {
	out := &AppServicePlan{
		Resource: Resource{
			ID:            ptr.Deref(p.ID),
			Name:          ptr.Deref(p.Name),
			Location:      ptr.Deref(p.Location),
			ResourceGroup: group,
		},
	}
	if p.SKU != nil {
		out.SKU = SKU{
			Name:     ptr.Deref(p.SKU.Name),
			Tier:     ptr.Deref(p.SKU.Tier),
			Size:     ptr.Deref(p.SKU.Size),
			Family:   ptr.Deref(p.SKU.Family),
			Capacity: ptr.Deref(p.SKU.Capacity),
		}
	}
	return out
}

func webAppFromSDK(group string, s *armappservice.Site) *WebApp {
	out := &WebApp{
		Resource: Resource{
			ID:            ptr.Deref(s.ID),
			Name:          ptr.Deref(s.Name),
			Location:      ptr.Deref(s.Location),
			ResourceGroup: group,
		},
	}
	if p := s.Properties; p != nil {
		out.PlanID = ptr.Deref(p.ServerFarmID)
		out.DefaultHostName = ptr.Deref(p.DefaultHostName)
		out.VerificationID = ptr.Deref(p.CustomDomainVerificationID)
		out.HostNames = ptr.Strings(p.HostNames)
	}
	return out
}

func analysisFromSDK(hostName string, r *armappservice.CustomHostnameAnalysisResult) *HostNameAnalysis {
	out := &HostNameAnalysis{HostName: hostName}
	p := r.Properties
	if p == nil {
		return out
	}
	if p.CustomDomainVerificationTest != nil {
		out.VerificationResult = string(*p.CustomDomainVerificationTest)
		out.Verified = *p.CustomDomainVerificationTest == armappservice.DNSVerificationTestResultPassed
	}
	if ptr.Deref(p.IsHostnameAlreadyVerified) {
		out.Verified = true
	}
	if id := ptr.Deref(p.ConflictingAppResourceID); id != "" {
		out.Conflicts = append(out.Conflicts, id)
	}
	return out
}

func hostNameBindingToSDK(app string) armappservice.HostNameBinding {
	return armappservice.HostNameBinding{
		Properties: &armappservice.HostNameBindingProperties{
			CustomHostNameDNSRecordType: to.Ptr(armappservice.CustomHostNameDNSRecordTypeA),
			HostNameType:                to.Ptr(armappservice.HostNameTypeVerified),
			SiteName:                    to.Ptr(app),
		},
	}
}
