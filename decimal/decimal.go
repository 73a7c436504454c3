// Package decimal provides a fixed-precision decimal floating-point
// representation that conforms to the numeric capabilities. It is backed by
// github.com/cockroachdb/apd/v3 with 34 significant digits and an exponent
// range of ±6144, like IEEE 754 decimal128.
//
// No condition is trapped: dividing a non-zero value by zero gives a signed
// infinity, zero by zero gives NaN, and results beyond the exponent range
// saturate to infinity, mirroring binary floating point.
package decimal

import (
	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/cockroachdb/apd/v3"
)

const (
	Precision   = 34
	MaxExponent = 6144
	MinExponent = -6143
)

var decimalContext = &apd.Context{
	Precision:   Precision,
	MaxExponent: MaxExponent,
	MinExponent: MinExponent,
	Rounding:    apd.RoundHalfEven,
}

// Decimal is an immutable decimal value. The zero value is 0.
type Decimal struct {
	d *apd.Decimal
}

var (
	_ numeric.ReciprocalRaisable[Decimal]    = Decimal{}
	_ numeric.Signable[Decimal]              = Decimal{}
	_ numeric.PowerTestable[Decimal]         = Decimal{}
	_ numeric.NaNRepresentable[Decimal]      = Decimal{}
	_ numeric.InfinityRepresentable[Decimal] = Decimal{}
	_ numeric.TwoRepresentable[Decimal]      = Decimal{}
)

// New returns coeff * 10**exponent.
func New(coeff int64, exponent int32) Decimal {
	return Decimal{apd.New(coeff, exponent)}
}

// Parse parses a decimal string such as "1.25", "-3E+5", "NaN" or "-Infinity".
func Parse(s string) (Decimal, stackerr.Error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, stackerr.Wrap(err)
	}
	return Decimal{d}, nil
}

func (x Decimal) value() *apd.Decimal {
	if x.d == nil {
		return apd.New(0, 0)
	}
	return x.d
}

type binaryOp func(d, x, y *apd.Decimal) (apd.Condition, error)

func apply(op binaryOp, x Decimal, y Decimal) Decimal {
	d := new(apd.Decimal)
	// Nothing is trapped, so conditions are reported in the result's form
	// and the error is always nil.
	_, _ = op(d, x.value(), y.value())
	return Decimal{d}
}

func (x Decimal) Add(y Decimal) Decimal { return apply(decimalContext.Add, x, y) }
func (x Decimal) Subtract(y Decimal) Decimal { return apply(decimalContext.Sub, x, y) }
func (x Decimal) Multiply(y Decimal) Decimal { return apply(decimalContext.Mul, x, y) }
func (x Decimal) Divide(y Decimal) Decimal { return apply(decimalContext.Quo, x, y) }
func (x Decimal) Remainder(y Decimal) Decimal { return apply(decimalContext.Rem, x, y) }

func (x Decimal) Negate() Decimal {
	d := new(apd.Decimal)
	_, _ = decimalContext.Neg(d, x.value())
	return Decimal{d}
}

// Equal reports whether x and y are numerically equal. NaN is never equal
// to anything, and 1.0 equals 1.00.
func (x Decimal) Equal(y Decimal) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.value().Cmp(y.value()) == 0
}

// Compare orders NaN before every other value.
func (x Decimal) Compare(y Decimal) int {
	switch xn, yn := x.IsNaN(), y.IsNaN(); {
	case xn && yn:
		return 0
	case xn:
		return -1
	case yn:
		return 1
	}
	return x.value().Cmp(y.value())
}

func (x Decimal) IsZero() bool {
	v := x.value()
	return v.Form == apd.Finite && v.IsZero()
}

func (x Decimal) IsNaN() bool {
	f := x.value().Form
	return f == apd.NaN || f == apd.NaNSignaling
}

func (x Decimal) IsInfinite() bool { return x.value().Form == apd.Infinite }
func (x Decimal) IsFinite() bool { return x.value().Form == apd.Finite }

func (Decimal) Zero() Decimal { return New(0, 0) }
func (Decimal) One() Decimal { return New(1, 0) }
func (Decimal) Two() Decimal { return New(2, 0) }
func (Decimal) NaN() Decimal { return Decimal{&apd.Decimal{Form: apd.NaN}} }
func (Decimal) Infinity() Decimal { return Decimal{&apd.Decimal{Form: apd.Infinite}} }

func (x Decimal) String() string {
	return x.value().String()
}
