package numeric

import (
	"math"

	"github.com/Invicton-Labs/go-numeric/comparison"
	"github.com/Invicton-Labs/go-numeric/constraints"
)

// PowerTestable values can be searched for being a power of another value.
type PowerTestable[T any] interface {
	Multipliable[T]
	Divisible[T]
	Equatable[T]
	ZeroRepresentable[T]
	OneRepresentable[T]
}

// maxPowerSearch bounds the multiplication searches in IsPower and
// IsPowerWithin.
const maxPowerSearch = 1 << 16

// IsPower reports whether x equals base raised to some non-negative integer
// exponent. It repeatedly divides x by base while the division is exact, so
// it never overflows and never rounds.
//
// When one is a multiple of base (base is the reciprocal of an integer, such
// as 0.1 for decimals or 0.5 for floats) the powers of base are compared
// with x directly instead, until they reach zero.
//
// The answer is exact for integral values and for those reciprocal bases.
// For other fractional bases (e.g. 2.25 and 1.5) the remainder test can
// give false negatives; use IsPowerWithin for floats.
//
// Since anything raised to zero is one, IsPower(one, base) is true for every
// base including zero and NaN.
func IsPower[T PowerTestable[T]](x T, base T) bool {
	one := One[T]()
	if x.Equal(one) || x.Equal(base) {
		return true
	}
	if base.IsZero() || x.IsZero() {
		return false
	}
	// 1 % base and base % 1 are both zero only when |base| is one, in
	// which case every power is one or base itself.
	if one.Remainder(base).IsZero() && base.Remainder(one).IsZero() {
		return false
	}
	if one.Remainder(base).IsZero() {
		return isReciprocalPower(x, base)
	}
	for !x.Equal(one) {
		if !x.Remainder(base).IsZero() {
			return false
		}
		x = x.Divide(base)
	}
	return true
}

func isReciprocalPower[T PowerTestable[T]](x T, base T) bool {
	power := base
	for i := 0; i < maxPowerSearch && !power.IsZero(); i++ {
		if power.Equal(x) {
			return true
		}
		power = power.Multiply(base)
	}
	return false
}

// IsPowerWithin reports whether x is within a relative or absolute tolerance
// of base raised to some non-negative integer exponent. The candidate powers
// are found by repeated multiplication and the search stops as soon as they
// move past x.
func IsPowerWithin[F constraints.Float](x F, base F, tolerance float64) bool {
	fx, fb := float64(x), float64(base)
	if math.IsNaN(fx) || math.IsNaN(fb) {
		return fx == 1
	}
	growing := math.Abs(fb) > 1
	power := 1.0
	for i := 0; i < maxPowerSearch; i++ {
		if comparison.ApproxEqual(power, fx, tolerance) {
			return true
		}
		next := power * fb
		if next == power || math.IsNaN(next) {
			// Fixed point (zero, one, infinity) or the product stopped
			// being a number.
			return false
		}
		if math.Abs(fb) == 1 && i > 0 {
			// -1 alternates between one and minus one; both were tried.
			return false
		}
		if growing && math.Abs(power) > math.Abs(fx) {
			return false
		}
		if !growing && math.Abs(fb) != 1 && math.Abs(power) < math.Abs(fx) {
			return false
		}
		power = next
	}
	return false
}
