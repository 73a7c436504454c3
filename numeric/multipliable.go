package numeric

import (
	"github.com/Invicton-Labs/go-numeric/collections"
	"github.com/Invicton-Labs/go-numeric/constraints"
)

// Multiplying returns the product of the multiplicand and the multiplier.
func Multiplying[T Multipliable[T]](multiplicand T, multiplier T) T {
	return multiplicand.Multiply(multiplier)
}

// MultiplyAssign multiplies the value that product points to by the multiplier.
func MultiplyAssign[T Multipliable[T]](product *T, multiplier T) {
	*product = (*product).Multiply(multiplier)
}

// Product returns the product of all given values, or one if there are none.
func Product[T Raisable[T]](values ...T) T {
	return collections.Reduce(values, One[T](), func(product T, v T) T {
		return product.Multiply(v)
	})
}

// Doubled returns x multiplied by two.
func Doubled[T interface {
	Multipliable[T]
	TwoRepresentable[T]
}](x T) T {
	return x.Multiply(Two[T]())
}

func Double[T interface {
	Multipliable[T]
	TwoRepresentable[T]
}](x *T) {
	*x = Doubled(*x)
}

// IsMultiple reports whether x is a multiple of other.
func IsMultiple[T interface {
	Divisible[T]
	ZeroRepresentable[T]
}](x T, other T) bool {
	return IsDivisible(x, other)
}

// MultiplyByAddition multiplies the multiplicand by a count using repeated
// addition. It is meant for types that can add but have no native multiply;
// such a type can implement Multiply with it. The count is a fixed-width
// unsigned integer, which bounds the loop.
func MultiplyByAddition[T interface {
	Addable[T]
	ZeroRepresentable[T]
}, C constraints.Unsigned](multiplicand T, count C) T {
	if count == 0 {
		return Zero[T]()
	}
	product := multiplicand
	for i := C(1); i < count; i++ {
		product = product.Add(multiplicand)
	}
	return product
}
