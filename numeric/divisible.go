package numeric

func Dividing[T Divisible[T]](dividend T, divisor T) T {
	return dividend.Divide(divisor)
}

// DivideAssign divides the value that quotient points to by the divisor.
func DivideAssign[T Divisible[T]](quotient *T, divisor T) {
	*quotient = (*quotient).Divide(divisor)
}

// Reciprocal returns one divided by x. Dividing by zero is left to the
// representation.
func Reciprocal[T interface {
	Divisible[T]
	OneRepresentable[T]
}](x T) T {
	return One[T]().Divide(x)
}

// IsInvertible reports whether x has a multiplicative inverse in its own
// representation, i.e. whether x multiplied by its reciprocal yields one.
func IsInvertible[T interface {
	ReciprocalRaisable[T]
	Equatable[T]
}](x T) bool {
	return Reciprocal(x).Multiply(x).Equal(One[T]())
}

// IsDivisible reports whether x divides evenly by divisor. Nothing is
// divisible by zero.
func IsDivisible[T interface {
	Divisible[T]
	ZeroRepresentable[T]
}](x T, divisor T) bool {
	if divisor.IsZero() {
		return false
	}
	return x.Remainder(divisor).IsZero()
}

// IsFactor reports whether x is a factor of other.
func IsFactor[T interface {
	Divisible[T]
	ZeroRepresentable[T]
}](x T, other T) bool {
	return IsDivisible(other, x)
}

// Halved returns x divided by two.
func Halved[T interface {
	Divisible[T]
	TwoRepresentable[T]
}](x T) T {
	return x.Divide(Two[T]())
}

func Halve[T interface {
	Divisible[T]
	TwoRepresentable[T]
}](x *T) {
	*x = Halved(*x)
}
