package numbers

import (
	"cmp"
	"math"
	"strconv"

	"github.com/Invicton-Labs/go-numeric/numeric"
	"github.com/Invicton-Labs/go-numeric/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// Uint64 is an exact, fixed-width unsigned integer representation. It can't
// be negated, so it has no signed-infinity or sign tests.
//
// Products wrap on overflow. Dividing a non-zero value by zero yields
// math.MaxUint64 and zero divided by zero is zero. The remainder of dividing
// by zero is the dividend.
type Uint64 uint64

var (
	_ numeric.ReciprocalRaisable[Uint64]  = Uint64(0)
	_ numeric.CheckedMultipliable[Uint64] = Uint64(0)
	_ numeric.Exponentiator[Uint64]       = Uint64(0)
	_ numeric.PowerTestable[Uint64]       = Uint64(0)
	_ numeric.Comparable[Uint64]          = Uint64(0)
)

func (x Uint64) Add(y Uint64) Uint64 { return x + y }
func (x Uint64) Subtract(y Uint64) Uint64 { return x - y }
func (x Uint64) Multiply(y Uint64) Uint64 { return x * y }

func (x Uint64) MultiplyChecked(y Uint64) (Uint64, bool) {
	return MulChecked(x, y)
}

func (x Uint64) Divide(y Uint64) Uint64 {
	if y == 0 {
		if x == 0 {
			return 0
		}
		return math.MaxUint64
	}
	return x / y
}

func (x Uint64) Remainder(y Uint64) Uint64 {
	if y == 0 {
		return x
	}
	return x % y
}

func (x Uint64) Power(exponent uint64) Uint64 {
	return PowInt(x, exponent)
}

func (x Uint64) Equal(y Uint64) bool { return x == y }
func (x Uint64) Compare(y Uint64) int { return cmp.Compare(x, y) }
func (x Uint64) IsZero() bool { return zero.IsZeroValue(x) }
func (Uint64) Zero() Uint64 { return 0 }
func (Uint64) One() Uint64 { return 1 }
func (Uint64) Two() Uint64 { return 2 }
func (x Uint64) String() string { return strconv.FormatUint(uint64(x), 10) }

func ParseUint64(s string) (Uint64, stackerr.Error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, stackerr.Wrap(err)
	}
	return Uint64(v), nil
}
