package numeric

// Signable values can be negated and ordered against zero.
type Signable[T any] interface {
	Negateable[T]
	Comparable[T]
	ZeroRepresentable[T]
}

func Negating[T Negateable[T]](x T) T {
	return x.Negate()
}

// Negate replaces the value that x points to with its additive inverse.
func Negate[T Negateable[T]](x *T) {
	*x = (*x).Negate()
}

// IsNegative reports whether x is less than zero. NaN is neither negative
// nor positive.
func IsNegative[T Signable[T]](x T) bool {
	return !isNaN(x) && x.Compare(Zero[T]()) < 0
}

func IsPositive[T Signable[T]](x T) bool {
	return !isNaN(x) && x.Compare(Zero[T]()) > 0
}

// IsSigned reports whether x has a definite sign, which is the case for
// every value except zero and NaN.
func IsSigned[T Signable[T]](x T) bool {
	return IsNegative(x) || IsPositive(x)
}

// IsOpposite reports whether x is the additive inverse of other.
func IsOpposite[T interface {
	Negateable[T]
	Equatable[T]
}](x T, other T) bool {
	return x.Equal(other.Negate())
}
