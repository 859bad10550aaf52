package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	t.Parallel()
	s := "value"
	n := int64(3600)

	assert.Equal(t, "value", Deref(&s))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, int64(3600), Deref(&n))
	assert.False(t, Deref[bool](nil))
}

func TestStrings(t *testing.T) {
	t.Parallel()
	a, b := "ns1", "ns2"

	assert.Equal(t, []string{"ns1", "ns2"}, Strings([]*string{&a, nil, &b}))
	assert.Empty(t, Strings(nil))
}

func TestStringPtrs(t *testing.T) {
	t.Parallel()
	in := []string{"x", "y"}
	out := StringPtrs(in)

	assert.Len(t, out, 2)
	assert.Equal(t, in, Strings(out))
}
