package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonEmpty returns s as a pointer, or nil when s is empty. Form fields that were
// left blank mean "keep the current value".
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
