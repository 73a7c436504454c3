package collections

import "github.com/Invicton-Labs/go-numeric/constraints"

// Range creates a slice of integer values from `start` (inclusive) to
// `end` (exclusive). If `end` is not after `start`, the slice is empty.
func Range[T constraints.Integer](start T, end T) []T {
	if end <= start {
		return []T{}
	}
	var r []T
	for i := start; i < end; i++ {
		r = append(r, i)
	}
	return r
}
