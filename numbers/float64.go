package numbers

import (
	"cmp"
	"math"
	"strconv"

	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-numeric/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// Float64 is an inexact IEEE 754 double-precision representation. All
// operations follow IEEE semantics: dividing a non-zero value by zero yields a
// signed infinity, zero by zero yields NaN, and NaN is unequal to everything.
// Remainder follows math.Mod.
type Float64 float64

var (
	_ numeric.ReciprocalRaisable[Float64]    = Float64(0)
	_ numeric.Signable[Float64]              = Float64(0)
	_ numeric.PowerTestable[Float64]         = Float64(0)
	_ numeric.NaNRepresentable[Float64]      = Float64(0)
	_ numeric.InfinityRepresentable[Float64] = Float64(0)
	_ numeric.TwoRepresentable[Float64]      = Float64(0)
)

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Subtract(y Float64) Float64 { return x - y }
func (x Float64) Multiply(y Float64) Float64 { return x * y }
func (x Float64) Divide(y Float64) Float64 { return x / y }
func (x Float64) Negate() Float64 { return -x }

func (x Float64) Remainder(y Float64) Float64 {
	return Float64(math.Mod(float64(x), float64(y)))
}

func (x Float64) Equal(y Float64) bool { return x == y }

// Compare orders NaN before every other value, as cmp.Compare does.
func (x Float64) Compare(y Float64) int { return cmp.Compare(x, y) }

func (x Float64) IsZero() bool { return zero.IsZeroValue(x) }
func (x Float64) IsNaN() bool { return IsNaN(x) }
func (x Float64) IsInfinite() bool { return IsInf(x, 0) }
func (x Float64) IsFinite() bool { return !IsNaN(x) && !IsInf(x, 0) }

func (Float64) Zero() Float64 { return 0 }
func (Float64) One() Float64 { return 1 }
func (Float64) Two() Float64 { return 2 }
func (Float64) NaN() Float64 { return Float64(math.NaN()) }
func (Float64) Infinity() Float64 { return Float64(math.Inf(1)) }

func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// ParseFloat64 parses a decimal or scientific-notation value. "NaN", "Inf",
// "+Inf" and "-Inf" are accepted, case-insensitively.
func ParseFloat64(s string) (Float64, stackerr.Error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, stackerr.Wrap(err)
	}
	return Float64(v), nil
}
