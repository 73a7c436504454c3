package numbers

import (
	"math"

	"github.com/Invicton-Labs/go-numeric/constraints"
)

func IsNaN[T constraints.Float](x T) bool {
	return x != x
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf[FT constraints.Float, ST constraints.Signed](f FT, sign ST) bool {
	return math.IsInf(float64(f), int(sign))
}
