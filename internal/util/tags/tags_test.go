package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilder(t *testing.T) {
	t.Parallel()

	got := NewBuilder("run-1").Build()
	assert.Equal(t, map[string]string{KeyRunID: "run-1", KeyManagedBy: ManagedByAzdns}, got)
}

func TestWithZone(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		zone string
		want bool
	}{
		{name: "set", zone: "contoso7421.com", want: true},
		{name: "empty", zone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewBuilder("run-1").WithZone(tt.zone).Build()
			_, ok := got[KeyZone]
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestMerge_KeepsStandardKeys(t *testing.T) {
	t.Parallel()

	got := NewBuilder("run-1").Merge(map[string]string{
		KeyRunID: "other",
		"owner":  "dns-team",
	}).Build()

	assert.Equal(t, "run-1", got[KeyRunID])
	assert.Equal(t, "dns-team", got["owner"])
}

func TestBuild_ReturnsCopy(t *testing.T) {
	t.Parallel()

	b := NewBuilder("run-1")
	first := b.Build()
	first[KeyRunID] = "mutated"

	assert.Equal(t, "run-1", b.Build()[KeyRunID])
}

func TestIsManaged(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		tags map[string]string
		want bool
	}{
		{name: "built", tags: NewBuilder("run-1").Build(), want: true},
		{name: "no run id", tags: map[string]string{KeyManagedBy: ManagedByAzdns}, want: false},
		{name: "other manager", tags: map[string]string{KeyManagedBy: "terraform", KeyRunID: "x"}, want: false},
		{name: "nil", tags: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsManaged(tt.tags))
		})
	}
}
