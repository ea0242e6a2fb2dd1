package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceSlice returns override if it's non-nil, otherwise returns fallback.
// An empty non-nil slice is an explicit override ("none"), not inheritance.
func CoalesceSlice[T any](override, fallback []T) []T {
	if override != nil {
		return override
	}
	return fallback
}
