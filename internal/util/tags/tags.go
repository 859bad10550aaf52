package tags

import "strings"

// Standard tag keys.
const (
	// KeyRunID identifies the run that created a resource group
	KeyRunID = "azdns-run-id"

	// KeyZone records the root DNS zone of the run
	KeyZone = "azdns-zone"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "managed-by"
)

// ManagedByAzdns is the KeyManagedBy value of every azdns resource group.
const ManagedByAzdns = "azdns"

// Builder provides a fluent interface for building resource tags.
type Builder struct {
	tags map[string]string
}

// NewBuilder creates a builder with the run ID and manager pre-set.
func NewBuilder(runID string) *Builder {
	return &Builder{
		tags: map[string]string{
			KeyRunID:     runID,
			KeyManagedBy: ManagedByAzdns,
		},
	}
}

// WithZone adds the root zone tag when zone is non-empty.
func (b *Builder) WithZone(zone string) *Builder {
	if zone != "" {
		b.tags[KeyZone] = zone
	}
	return b
}

// Merge adds all tags from the provided map. Standard keys are not overridden.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		if _, ok := b.tags[k]; ok {
			continue
		}
		b.tags[k] = v
	}
	return b
}

// Build returns a copy of the tags map.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.tags))
	for k, v := range b.tags {
		result[k] = v
	}
	return result
}

// IsManaged reports whether tags mark a resource group created by azdns.
func IsManaged(tags map[string]string) bool {
	return strings.EqualFold(tags[KeyManagedBy], ManagedByAzdns) && tags[KeyRunID] != ""
}
