package ptr

// To returns a pointer to v. Handy for optional DTO fields in tests and
// converters.
func To[T any](v T) *T {
	return &v
}

func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
