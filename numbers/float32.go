package numbers

import (
	"cmp"
	"math"
	"strconv"

	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-numeric/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// Float32 is an inexact IEEE 754 single-precision representation with the same
// semantics as Float64. Every operation rounds to single precision.
type Float32 float32

var (
	_ numeric.ReciprocalRaisable[Float32]    = Float32(0)
	_ numeric.Signable[Float32]              = Float32(0)
	_ numeric.PowerTestable[Float32]         = Float32(0)
	_ numeric.NaNRepresentable[Float32]      = Float32(0)
	_ numeric.InfinityRepresentable[Float32] = Float32(0)
	_ numeric.TwoRepresentable[Float32]      = Float32(0)
)

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Subtract(y Float32) Float32 { return x - y }
func (x Float32) Multiply(y Float32) Float32 { return x * y }
func (x Float32) Divide(y Float32) Float32 { return x / y }
func (x Float32) Negate() Float32 { return -x }

func (x Float32) Remainder(y Float32) Float32 {
	return Float32(math.Mod(float64(x), float64(y)))
}

func (x Float32) Equal(y Float32) bool { return x == y }

// Compare orders NaN before every other value, as cmp.Compare does.
func (x Float32) Compare(y Float32) int { return cmp.Compare(x, y) }

func (x Float32) IsZero() bool { return zero.IsZeroValue(x) }
func (x Float32) IsNaN() bool { return IsNaN(x) }
func (x Float32) IsInfinite() bool { return IsInf(x, 0) }
func (x Float32) IsFinite() bool { return !IsNaN(x) && !IsInf(x, 0) }

func (Float32) Zero() Float32 { return 0 }
func (Float32) One() Float32 { return 1 }
func (Float32) Two() Float32 { return 2 }
func (Float32) NaN() Float32 { return Float32(math.NaN()) }
func (Float32) Infinity() Float32 { return Float32(math.Inf(1)) }

func (x Float32) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

func ParseFloat32(s string) (Float32, stackerr.Error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, stackerr.Wrap(err)
	}
	return Float32(v), nil
}
