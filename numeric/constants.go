package numeric

import "github.com/Invicton-Labs/go-numeric/zero"

// Zero returns the additive identity of T.
func Zero[T ZeroRepresentable[T]]() T {
	return zero.ZeroValue[T]().Zero()
}

// One returns the multiplicative identity of T.
func One[T OneRepresentable[T]]() T {
	return zero.ZeroValue[T]().One()
}

func Two[T TwoRepresentable[T]]() T {
	return zero.ZeroValue[T]().Two()
}

func NaN[T NaNRepresentable[T]]() T {
	return zero.ZeroValue[T]().NaN()
}

// Infinity returns positive infinity.
func Infinity[T InfinityRepresentable[T]]() T {
	return zero.ZeroValue[T]().Infinity()
}

// NegativeInfinity returns positive infinity negated.
func NegativeInfinity[T interface {
	InfinityRepresentable[T]
	Negateable[T]
}]() T {
	return Infinity[T]().Negate()
}

// isNaN reports whether x is NaN. Types that cannot represent NaN never are.
func isNaN[T any](x T) bool {
	n, ok := any(x).(NaNRepresentable[T])
	return ok && n.IsNaN()
}

// isInfinite reports whether x is infinite. Types that cannot represent
// infinity never are.
func isInfinite[T any](x T) bool {
	i, ok := any(x).(InfinityRepresentable[T])
	return ok && i.IsInfinite()
}
