package numeric

import (
	"math/bits"

	"github.com/Invicton-Labs/go-numeric/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// RaisingUnsigned returns base raised to an unsigned exponent.
//
// An exponent of zero always yields one, even when base is zero, NaN or
// infinite. This differs from math.Pow for NaN and is intentional. An
// exponent of one returns base unchanged. Larger exponents use the type's
// Exponentiator if it has one, and square-and-multiply otherwise, so NaN and
// infinity propagate through the type's own Multiply. Products that exceed
// the range of the representation behave as its Multiply does: fixed-width
// integers wrap, floating-point values saturate to infinity. Use
// RaisingChecked to detect overflow instead.
func RaisingUnsigned[T Raisable[T], E constraints.Unsigned](base T, exponent E) T {
	return raise(base, uint64(exponent))
}

// RaiseUnsigned raises the value that x points to by an unsigned exponent.
func RaiseUnsigned[T Raisable[T], E constraints.Unsigned](x *T, exponent E) {
	*x = raise(*x, uint64(exponent))
}

// Raising returns base raised to a signed exponent. Non-negative exponents
// behave like RaisingUnsigned. A negative exponent -n yields one divided by
// base**n (not (1/base)**n), so a zero base falls through to whatever the
// type's Divide does with a zero divisor.
//
// An infinite base raised to -1 yields the base with its sign inverted, so
// +Inf**-1 is -Inf and -Inf**-1 is +Inf, the same as multiplying by -1.
// Other negative exponents of an infinite base go through Divide and give a
// signed zero. Types that can't represent infinity or can't be negated skip
// this rule.
func Raising[T ReciprocalRaisable[T], E constraints.Signed](base T, exponent E) T {
	if exponent >= 0 {
		return raise(base, uint64(exponent))
	}
	if exponent == -1 && isInfinite(base) {
		if n, ok := any(base).(Negateable[T]); ok {
			return n.Negate()
		}
	}
	return One[T]().Divide(raise(base, magnitude(exponent)))
}

// Raise raises the value that x points to by a signed exponent.
func Raise[T ReciprocalRaisable[T], E constraints.Signed](x *T, exponent E) {
	*x = Raising(*x, exponent)
}

// RaisingChecked is RaisingUnsigned for types that can detect overflow. It
// returns an error instead of a wrapped result when any product overflows.
func RaisingChecked[T interface {
	CheckedMultipliable[T]
	OneRepresentable[T]
}, E constraints.Unsigned](base T, exponent E) (T, stackerr.Error) {
	n := uint64(exponent)
	if n == 0 {
		return One[T](), nil
	}
	// Every intermediate of the left-to-right method is a power of base no
	// larger than the result, so an intermediate overflow means the result
	// overflows too.
	result := base
	for bit := bits.Len64(n) - 2; bit >= 0; bit-- {
		var ok bool
		if result, ok = result.MultiplyChecked(result); !ok {
			return result, overflowError(base, exponent)
		}
		if n&(1<<bit) != 0 {
			if result, ok = result.MultiplyChecked(base); !ok {
				return result, overflowError(base, exponent)
			}
		}
	}
	return result, nil
}

func overflowError[T any, E constraints.Unsigned](base T, exponent E) stackerr.Error {
	return stackerr.Errorf("%v raised to %d overflows its representation", base, exponent)
}

// Squared returns x raised to the second power.
func Squared[T Raisable[T]](x T) T {
	return raise(x, 2)
}

func Square[T Raisable[T]](x *T) {
	*x = raise(*x, 2)
}

// Cubed returns x raised to the third power.
func Cubed[T Raisable[T]](x T) T {
	return raise(x, 3)
}

func Cube[T Raisable[T]](x *T) {
	*x = raise(*x, 3)
}

func raise[T Raisable[T]](base T, exponent uint64) T {
	switch exponent {
	case 0:
		return One[T]()
	case 1:
		return base
	}
	if e, ok := any(base).(Exponentiator[T]); ok {
		return e.Power(exponent)
	}
	return squareAndMultiply(base, exponent)
}

// squareAndMultiply walks the exponent's bits from the most significant one
// down. It starts from base rather than one, so no multiplication by the
// identity ever happens.
func squareAndMultiply[T Multipliable[T]](base T, exponent uint64) T {
	result := base
	for bit := bits.Len64(exponent) - 2; bit >= 0; bit-- {
		result = result.Multiply(result)
		if exponent&(1<<bit) != 0 {
			result = result.Multiply(base)
		}
	}
	return result
}

// magnitude returns |e| for a negative e without overflowing on the most
// negative value of E.
func magnitude[E constraints.Signed](e E) uint64 {
	return uint64(-(e + 1)) + 1
}
