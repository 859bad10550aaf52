package provisioning

import "github.com/imamik/azdns/internal/platform/azure"

// Host is a VM together with the networking created for it.
type Host struct {
	Network   *azure.VirtualNetwork
	Address   *azure.PublicIPAddress
	Interface *azure.NetworkInterface
	Machine   *azure.VirtualMachine
}

// IP returns the host's public IP address.
func (h *Host) IP() string {
	if h == nil || h.Address == nil {
		return ""
	}
	return h.Address.IPAddress
}

// RecordListing is the record-set enumeration of a zone.
type RecordListing struct {
	CNAME []*azure.RecordSet
	A     []*azure.RecordSet
}

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results. Fields are only ever
// written forward.
type State struct {
	// Init results
	Subscription  *azure.Subscription
	ResourceGroup *azure.ResourceGroup

	// DNS and web app results
	RootZone            *azure.Zone
	Plan                *azure.AppServicePlan
	WebApp              *azure.WebApp
	VerificationRecords []*azure.RecordSet
	Domain              *azure.Domain
	HostNameAnalysis    *azure.HostNameAnalysis
	HostNameBound       bool

	// Hosts and their records
	PrimaryHost   *Host
	PrimaryRecord *azure.RecordSet
	Listing       *RecordListing
	ChildZone     *azure.Zone
	Delegation    *azure.RecordSet
	PartnerHost   *Host
	PartnerRecord *azure.RecordSet

	// Teardown steps inside the pipeline
	PrimaryRecordRemoved bool
	ChildZoneDeleted     bool
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// GroupCreated reports whether Init created the run's resource group.
func (s *State) GroupCreated() bool {
	return s != nil && s.ResourceGroup != nil
}
