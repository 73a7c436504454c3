package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Invicton-Labs/go-numeric/decimal"
	"github.com/Invicton-Labs/go-numeric/numbers"
	"github.com/Invicton-Labs/go-numeric/numeric"
)

func TestIsPower_Int64(t *testing.T) {
	cases := []struct {
		x, base numbers.Int64
		want    bool
	}{
		{4, 2, true},
		{3, 2, false},
		{1, 2, true},
		{2, 2, true},
		{1024, 2, true},
		{1023, 2, false},
		{-8, 2, false},
		{-8, -2, true},
		{16, -2, true},
		{8, -2, false},
		{0, 0, true},
		{1, 0, true},
		{5, 0, false},
		{0, 2, false},
		{1, 1, true},
		{5, 1, false},
		{1, -1, true},
		{-1, -1, true},
		{-5, -1, false},
		{math.MaxInt64, 2, false},
		{1 << 62, 2, true},
		{4052555153018976267, 3, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, numeric.IsPower(c.x, c.base), "IsPower(%d, %d)", c.x, c.base)
	}
}

func TestIsPower_Uint64(t *testing.T) {
	assert.True(t, numeric.IsPower(numbers.Uint64(1<<63), numbers.Uint64(2)))
	assert.False(t, numeric.IsPower(numbers.Uint64(math.MaxUint64), numbers.Uint64(2)))
	// (2**63 + 1) squared wraps to one; it must not be mistaken for a unit.
	assert.False(t, numeric.IsPower(numbers.Uint64(7), numbers.Uint64(1<<63+1)))
}

func TestIsPower_Float64(t *testing.T) {
	assert.True(t, numeric.IsPower(numbers.Float64(4), 2))
	assert.False(t, numeric.IsPower(numbers.Float64(3), 2))
	assert.True(t, numeric.IsPower(numbers.Float64(1024), 2))
	assert.True(t, numeric.IsPower(numbers.Float64(1e6), 10))
	assert.True(t, numeric.IsPower(numbers.Float64(1), numeric.NaN[numbers.Float64]()))
	assert.False(t, numeric.IsPower(numeric.NaN[numbers.Float64](), 2))
	assert.False(t, numeric.IsPower(numeric.Infinity[numbers.Float64](), 2))
	// Negative exponents are not searched.
	assert.False(t, numeric.IsPower(numbers.Float64(0.25), 2))
}

func TestIsPower_Float32(t *testing.T) {
	assert.True(t, numeric.IsPower(numbers.Float32(4), 2))
	assert.False(t, numeric.IsPower(numbers.Float32(3), 2))
}

func TestIsPower_Decimal(t *testing.T) {
	assert.True(t, numeric.IsPower(decimal.New(1000, 0), decimal.New(10, 0)))
	assert.False(t, numeric.IsPower(decimal.New(1001, 0), decimal.New(10, 0)))
	assert.True(t, numeric.IsPower(decimal.New(1, 3), decimal.New(10, 0)))
}

func TestIsPower_ReciprocalBase(t *testing.T) {
	tenth := decimal.New(1, -1)
	assert.True(t, numeric.IsPower(decimal.New(1, -2), tenth))
	assert.True(t, numeric.IsPower(decimal.New(1, -30), tenth))
	assert.False(t, numeric.IsPower(decimal.New(2, -2), tenth))
	assert.False(t, numeric.IsPower(decimal.New(10, 0), tenth))

	negTenth := decimal.New(-1, -1)
	assert.True(t, numeric.IsPower(decimal.New(-1, -3), negTenth))
	assert.False(t, numeric.IsPower(decimal.New(1, -3), negTenth))

	assert.True(t, numeric.IsPower(numbers.Float64(0.25), 0.5))
	assert.True(t, numeric.IsPower(numbers.Float64(math.Ldexp(1, -1074)), 0.5))
	assert.False(t, numeric.IsPower(numbers.Float64(0.3), 0.5))
	assert.True(t, numeric.IsPower(numbers.Float32(0.0625), 0.25))
}

func TestIsPowerWithin(t *testing.T) {
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(2.25), 1.5, 0))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(0.001), 0.1, 1e-12))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(0.25), 0.5, 0))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(0.3), 0.5, 1e-9))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(8), 2, 0))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(3), 2, 1e-9))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(-8), 2, 1e-9))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(-8), -2, 0))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(-1), -1, 0))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(5), -1, 0))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(5), 1, 0))
	assert.True(t, numeric.IsPowerWithin(numbers.Float64(0), 0, 0))
	assert.False(t, numeric.IsPowerWithin(numbers.Float64(5), 0, 0))
	assert.False(t, numeric.IsPowerWithin(numeric.NaN[numbers.Float64](), 2, 1))
	assert.True(t, numeric.IsPowerWithin(numbers.Float32(1.0000001), 2, 1e-6))
}
