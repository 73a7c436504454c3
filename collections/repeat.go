package collections

import "github.com/Invicton-Labs/go-numeric/constraints"

// Repeat creates a slice that repeats the given value a certain
// number of times.
func Repeat[T any, C constraints.Integer](value T, count C) []T {
	if count <= 0 {
		return []T{}
	}
	v := make([]T, 0, count)
	for i := C(0); i < count; i++ {
		v = append(v, value)
	}
	return v
}
