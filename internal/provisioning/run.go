package provisioning

import (
	"github.com/google/uuid"

	"github.com/imamik/azdns/internal/util/naming"
	"github.com/imamik/azdns/internal/util/tags"
)

// RunContext identifies one provisioning run and holds every generated name.
// It is created once before Init and never changes afterwards.
type RunContext struct {
	ID             string
	SubscriptionID string
	Location       string
	Names          naming.Names
}

// NewRunContext draws the names for a new run. A nil src uses the default
// random source.
func NewRunContext(subscriptionID, location string, src naming.Source) *RunContext {
	return &RunContext{
		ID:             uuid.NewString(),
		SubscriptionID: subscriptionID,
		Location:       location,
		Names:          naming.NewNames(src),
	}
}

// Group returns the run's resource group name.
func (r *RunContext) Group() string {
	return r.Names.ResourceGroup
}

// ChildZone returns the delegated partner zone name.
func (r *RunContext) ChildZone() string {
	return naming.ChildZone(r.Names.Zone)
}

// HostName returns the custom host name bound to the web app.
func (r *RunContext) HostName() string {
	return naming.HostName(r.Names.Zone)
}

// Tags returns the tags applied to the run's resource group.
func (r *RunContext) Tags() map[string]string {
	return tags.NewBuilder(r.ID).WithZone(r.Names.Zone).Build()
}
