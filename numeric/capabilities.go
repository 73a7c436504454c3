// Package numeric defines one narrow interface per numeric capability and a
// set of generic functions that derive further operations from those
// capabilities. A concrete type implements only the primitive methods of the
// capabilities it supports and gets every derived operation for free.
//
// Capability interfaces are self-referential: a type T conforms to
// Multipliable[T] by having a method Multiply(T) T. Methods that expose a
// constant (Zero, One, Two, NaN, Infinity) are called on the zero value of T
// and must not read their receiver.
package numeric

// Addable values can be added.
type Addable[T any] interface {
	// Add returns the sum of the receiver and the addend.
	Add(addend T) T
}

// Subtractable values can be subtracted.
type Subtractable[T any] interface {
	// Subtract returns the difference of the receiver and the subtrahend.
	Subtract(subtrahend T) T
}

// Multipliable values can be multiplied.
type Multipliable[T any] interface {
	// Multiply returns the product of the receiver and the multiplier.
	Multiply(multiplier T) T
}

// Divisible values can be divided. What dividing by zero produces is up to
// the implementation; none of the derived operations special-case it.
type Divisible[T any] interface {
	// Divide returns the quotient of the receiver and the divisor.
	Divide(divisor T) T
	// Remainder returns the remainder of dividing the receiver by the divisor.
	Remainder(divisor T) T
}

// Negateable values have an additive inverse.
type Negateable[T any] interface {
	Negate() T
}

type Equatable[T any] interface {
	Equal(other T) bool
}

// Comparable values have a total order, except for NaN values which compare
// as unordered and are never equal to anything.
type Comparable[T any] interface {
	Equatable[T]
	// Compare returns -1, 0 or +1 when the receiver is less than, equal to
	// or greater than other.
	Compare(other T) int
}

type ZeroRepresentable[T any] interface {
	IsZero() bool
	Zero() T
}

// OneRepresentable values have a multiplicative identity.
type OneRepresentable[T any] interface {
	One() T
}

type TwoRepresentable[T any] interface {
	Two() T
}

type NaNRepresentable[T any] interface {
	IsNaN() bool
	NaN() T
}

type InfinityRepresentable[T any] interface {
	IsFinite() bool
	IsInfinite() bool
	// Infinity returns positive infinity.
	Infinity() T
}

// Raisable values can be raised to an unsigned power.
type Raisable[T any] interface {
	Multipliable[T]
	OneRepresentable[T]
}

// ReciprocalRaisable values can be raised to a signed power. Negative powers
// are formed as the reciprocal of the matching positive power.
type ReciprocalRaisable[T any] interface {
	Raisable[T]
	Divisible[T]
}

// Exponentiator is implemented by types that provide their own native
// exponentiation. When present it replaces the default square-and-multiply
// algorithm for exponents greater than one.
type Exponentiator[T any] interface {
	Power(exponent uint64) T
}

// CheckedMultipliable values can report whether a product overflowed the
// range of their representation.
type CheckedMultipliable[T any] interface {
	Multipliable[T]
	// MultiplyChecked returns the product and false if it overflowed.
	MultiplyChecked(multiplier T) (T, bool)
}
