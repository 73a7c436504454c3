package numbers

import (
	"cmp"
	"math"
	"strconv"

	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-numeric/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// Int64 is an exact, fixed-width signed integer representation.
//
// Products wrap on overflow. Dividing by zero saturates: a positive dividend
// yields math.MaxInt64, a negative one math.MinInt64, and zero yields zero.
// The remainder of dividing by zero is the dividend.
type Int64 int64

var (
	_ numeric.ReciprocalRaisable[Int64]  = Int64(0)
	_ numeric.CheckedMultipliable[Int64] = Int64(0)
	_ numeric.Exponentiator[Int64]       = Int64(0)
	_ numeric.Signable[Int64]            = Int64(0)
	_ numeric.PowerTestable[Int64]       = Int64(0)
	_ numeric.Addable[Int64]             = Int64(0)
	_ numeric.Subtractable[Int64]        = Int64(0)
	_ numeric.TwoRepresentable[Int64]    = Int64(0)
)

func (x Int64) Add(y Int64) Int64 { return x + y }
func (x Int64) Subtract(y Int64) Int64 { return x - y }
func (x Int64) Multiply(y Int64) Int64 { return x * y }
func (x Int64) Negate() Int64 { return -x }

func (x Int64) MultiplyChecked(y Int64) (Int64, bool) {
	return MulChecked(x, y)
}

func (x Int64) Divide(y Int64) Int64 {
	if y == 0 {
		switch {
		case x > 0:
			return math.MaxInt64
		case x < 0:
			return math.MinInt64
		}
		return 0
	}
	return x / y
}

func (x Int64) Remainder(y Int64) Int64 {
	if y == 0 {
		return x
	}
	return x % y
}

// Power uses native integer exponentiation.
func (x Int64) Power(exponent uint64) Int64 {
	return PowInt(x, exponent)
}

func (x Int64) Equal(y Int64) bool { return x == y }
func (x Int64) Compare(y Int64) int { return cmp.Compare(x, y) }
func (x Int64) IsZero() bool { return zero.IsZeroValue(x) }
func (Int64) Zero() Int64 { return 0 }
func (Int64) One() Int64 { return 1 }
func (Int64) Two() Int64 { return 2 }
func (x Int64) String() string { return strconv.FormatInt(int64(x), 10) }

// ParseInt64 parses a base 10 integer.
func ParseInt64(s string) (Int64, stackerr.Error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, stackerr.Wrap(err)
	}
	return Int64(v), nil
}
