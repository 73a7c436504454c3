package zero

// ZeroValue returns the zero value of a given type.
func ZeroValue[T any]() T {
	var t T
	return t
}

// IsZeroValue reports whether v is the zero value of its type. For
// floating-point types both +0 and -0 are zero values.
func IsZeroValue[T comparable](v T) bool {
	return v == ZeroValue[T]()
}
