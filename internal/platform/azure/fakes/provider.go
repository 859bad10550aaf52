package fakes

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/imamik/azdns/internal/platform/azure"
)

// Operation names recorded by the provider. They match the
// azure.InfrastructureManager method names.
const (
	OpGetSubscription        = "GetSubscription"
	OpCreateResourceGroup    = "CreateResourceGroup"
	OpDeleteResourceGroup    = "DeleteResourceGroup"
	OpCreateZone             = "CreateZone"
	OpDeleteZone             = "DeleteZone"
	OpCreateRecordSet        = "CreateRecordSet"
	OpDeleteRecordSet        = "DeleteRecordSet"
	OpListRecordSets         = "ListRecordSets"
	OpCreateAppServicePlan   = "CreateAppServicePlan"
	OpCreateWebApp           = "CreateWebApp"
	OpAnalyzeCustomHostName  = "AnalyzeCustomHostName"
	OpBindHostName           = "BindHostName"
	OpCreateDomain           = "CreateDomain"
	OpBindDomainToZone       = "BindDomainToZone"
	OpCreateVirtualNetwork   = "CreateVirtualNetwork"
	OpCreatePublicIPAddress  = "CreatePublicIPAddress"
	OpGetPublicIPAddress     = "GetPublicIPAddress"
	OpCreateNetworkInterface = "CreateNetworkInterface"
	OpCreateVirtualMachine   = "CreateVirtualMachine"
)

// Call is one recorded provider call.
type Call struct {
	Op    string
	Group string
	Name  string
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s/%s)", c.Op, c.Group, c.Name)
}

type failure struct {
	op   string
	name string
	err  error
}

type zoneState struct {
	zone    *azure.Zone
	records map[string]*azure.RecordSet
}

// Provider is an in-memory azure.InfrastructureManager.
type Provider struct {
	mu sync.Mutex

	calls        []Call
	failures     []failure
	bindFailures int

	groups    map[string]*azure.ResourceGroup
	zones     map[string]*zoneState
	apps      map[string]*azure.WebApp
	domains   map[string]*azure.Domain
	addresses map[string]*azure.PublicIPAddress
	resources map[string]string // resource ID -> group

	zoneSeq int
	ipSeq   int
}

// Ensure interface compliance
var _ azure.InfrastructureManager = (*Provider)(nil)

// New returns an empty provider.
func New() *Provider {
	return &Provider{
		groups:    make(map[string]*azure.ResourceGroup),
		zones:     make(map[string]*zoneState),
		apps:      make(map[string]*azure.WebApp),
		domains:   make(map[string]*azure.Domain),
		addresses: make(map[string]*azure.PublicIPAddress),
		resources: make(map[string]string),
	}
}

// FailOn makes every call of op return err.
func (p *Provider) FailOn(op string, err error) *Provider {
	return p.FailOnName(op, "", err)
}

// FailOnName makes calls of op for the named resource return err.
// An empty name matches any resource.
func (p *Provider) FailOnName(op, name string, err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, failure{op: op, name: name, err: err})
	return p
}

// FailBindAttempts makes the next n BindHostName calls report the host
// name as not verified yet.
func (p *Provider) FailBindAttempts(n int) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bindFailures = n
	return p
}

// Calls returns the recorded calls in order.
func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.calls)
}

// Ops returns the recorded operation names in order.
func (p *Provider) Ops() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ops := make([]string, len(p.calls))
	for i, c := range p.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how often op was called.
func (p *Provider) Count(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ResourceGroupExists reports whether the group currently exists.
func (p *Provider) ResourceGroupExists(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.groups[name]
	return ok
}

// ZoneExists reports whether the zone currently exists in the group.
func (p *Provider) ZoneExists(group, zone string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.zones[zoneKey(group, zone)]
	return ok
}

// RecordSets returns a snapshot of every record set in a zone, ordered by
// type then name.
func (p *Provider) RecordSets(group, zone string) []*azure.RecordSet {
	p.mu.Lock()
	defer p.mu.Unlock()

	zs, ok := p.zones[zoneKey(group, zone)]
	if !ok {
		return nil
	}
	out := make([]*azure.RecordSet, 0, len(zs.records))
	for _, rs := range zs.records {
		cp := *rs
		out = append(out, &cp)
	}
	slices.SortFunc(out, func(a, b *azure.RecordSet) int {
		if c := strings.Compare(string(a.Type), string(b.Type)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// ResourceError builds an ARM response error with the given status, the
// way the SDK reports failed calls.
func ResourceError(status int, code string) error {
	req, _ := http.NewRequest(http.MethodPut, "https://management.azure.com/fake", nil)
	return &azcore.ResponseError{
		StatusCode: status,
		ErrorCode:  code,
		RawResponse: &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Body:       http.NoBody,
			Request:    req,
		},
	}
}

// record logs the call and returns an injected failure, if any.
// Callers must hold p.mu.
func (p *Provider) record(op, group, name string) error {
	p.calls = append(p.calls, Call{Op: op, Group: group, Name: name})
	for _, f := range p.failures {
		if f.op == op && (f.name == "" || f.name == name) {
			return f.err
		}
	}
	return nil
}

// requireGroup fails with NotFound unless the group exists. Callers must hold p.mu.
func (p *Provider) requireGroup(group string) error {
	if _, ok := p.groups[group]; !ok {
		return ResourceError(http.StatusNotFound, "ResourceGroupNotFound")
	}
	return nil
}

func (p *Provider) newResource(group, kind, name, location string) azure.Resource {
	id := fmt.Sprintf("/subscriptions/fake/resourceGroups/%s/providers/%s/%s", group, kind, name)
	p.resources[id] = group
	return azure.Resource{ID: id, Name: name, Location: location, ResourceGroup: group}
}

func zoneKey(group, zone string) string {
	return group + "/" + strings.ToLower(zone)
}

func recordKey(name string, t azure.RecordType) string {
	return string(t) + "/" + strings.ToLower(name)
}
