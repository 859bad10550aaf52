package naming

import (
	"fmt"
	"math/rand/v2"
)

// MaxSuffix is the exclusive upper bound of the numeric suffix.
const MaxSuffix = 9999

// Fixed record and zone labels used by the pipeline.
const (
	CNAMERecord      = "www"
	TXTRecordWWW     = "asuid.www"
	TXTRecordApex    = "asuid"
	ApexRecord       = "@"
	DelegationRecord = "partner"
	childZoneLabel   = "partners"
)

// Source returns a value in [0, n). It matches (*rand.Rand).IntN.
type Source func(n int) int

// CreateRandomName returns prefix followed by a random number in [0, MaxSuffix).
func CreateRandomName(prefix string) string {
	return CreateName(rand.IntN, prefix)
}

// CreateName is CreateRandomName with an explicit randomness source.
func CreateName(src Source, prefix string) string {
	if src == nil {
		src = rand.IntN
	}
	return fmt.Sprintf("%s%d", prefix, src(MaxSuffix))
}

// Names holds every generated name of a single run.
type Names struct {
	ResourceGroup  string `yaml:"resourceGroup"`
	Zone           string `yaml:"zone"`
	AppServicePlan string `yaml:"appServicePlan"`
	WebApp         string `yaml:"webApp"`

	PrimaryNetwork   string `yaml:"primaryNetwork"`
	PrimaryAddress   string `yaml:"primaryAddress"`
	PrimaryInterface string `yaml:"primaryInterface"`
	PrimaryMachine   string `yaml:"primaryMachine"`

	PartnerNetwork   string `yaml:"partnerNetwork"`
	PartnerAddress   string `yaml:"partnerAddress"`
	PartnerInterface string `yaml:"partnerInterface"`
	PartnerMachine   string `yaml:"partnerMachine"`
}

// NewNames draws a complete name plan for one run.
func NewNames(src Source) Names {
	return Names{
		ResourceGroup:    CreateName(src, "DnsTemplateRG"),
		Zone:             Zone(CreateName(src, "contoso")),
		AppServicePlan:   CreateName(src, "servicePlan"),
		WebApp:           CreateName(src, "SampleWebApp"),
		PrimaryNetwork:   CreateName(src, "vnet1-"),
		PrimaryAddress:   CreateName(src, "pip1-"),
		PrimaryInterface: CreateName(src, "nic1-"),
		PrimaryMachine:   CreateName(src, "vm1-"),
		PartnerNetwork:   CreateName(src, "vnet2-"),
		PartnerAddress:   CreateName(src, "pip2-"),
		PartnerInterface: CreateName(src, "nic2-"),
		PartnerMachine:   CreateName(src, "vm2-"),
	}
}

// Zone returns the root zone name for a generated label.
func Zone(label string) string {
	return label + ".com"
}

// ChildZone returns the delegated partner zone below zone.
func ChildZone(zone string) string {
	return fmt.Sprintf("%s.%s", childZoneLabel, zone)
}

// Domain returns the App Service domain name. It is always the root zone.
func Domain(zone string) string {
	return zone
}

// HostName returns the custom host name bound to the web app.
func HostName(zone string) string {
	return zone
}
