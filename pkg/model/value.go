package model

// Ptr returns a pointer to v. Generated constructors use it to populate
// schema defaults.
func Ptr[T any](v T) *T {
	return &v
}

// Get returns the value behind an optional field and whether it is set.
func Get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
