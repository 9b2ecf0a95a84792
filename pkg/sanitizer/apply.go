package sanitizer

// Compose chains transforms left to right into one function.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range transforms {
			v = fn(v)
		}
		return v
	}
}

// Truncate returns a transform that keeps at most n runes.
func Truncate(n int) func(string) string {
	return func(s string) string { return MaxLength(s, n) }
}
