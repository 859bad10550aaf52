// Package ptr provides helpers for the pointer-heavy Azure SDK models.
package ptr

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Strings dereferences a slice of string pointers, skipping nil entries.
func Strings(in []*string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// StringPtrs is the inverse of Strings.
func StringPtrs(in []string) []*string {
	out := make([]*string, 0, len(in))
	for i := range in {
		out = append(out, &in[i])
	}
	return out
}
