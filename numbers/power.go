package numbers

import "github.com/Invicton-Labs/go-numeric/constraints"

// PowInt raises base to a non-negative integer power by square-and-multiply.
// Results that don't fit in BaseType wrap around.
func PowInt[BaseType constraints.Integer, ExpType constraints.Integer](base BaseType, exp ExpType) BaseType {
	if exp < 0 {
		panic("PowInt cannot be used with negative exponents")
	}
	result := BaseType(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// MulChecked returns a*b and whether the product fit in T.
func MulChecked[T constraints.Integer](a T, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	// Both quotients are needed: min/-1 wraps back to min, so for signed
	// types one of the two orderings can't see the overflow.
	if p/b != a || p/a != b {
		return p, false
	}
	return p, true
}
