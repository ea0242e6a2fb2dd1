package ptr

// To returns a pointer to v. Mostly used to build partial rule overrides
// and test fixtures without intermediate variables.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
