package comparison

import (
	"github.com/Invicton-Labs/go-numeric/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// ApproxEqual returns true if a and b are equal to within an absolute
// tolerance or a relative tolerance, both given by tolerance. A tolerance of
// zero requires exact equality.
func ApproxEqual[T constraints.Float](a T, b T, tolerance float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), tolerance, tolerance)
}

// Identical returns true if a and b are equal, or if both are NaN. Unlike ==
// it can be used to check that a computation produced NaN.
func Identical[T constraints.Float](a T, b T) bool {
	return a == b || (a != a && b != b)
}
