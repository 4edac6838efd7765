package util

// Choose is an expression-level if/else.
func Choose[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
