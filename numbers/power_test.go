package numbers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowInt(t *testing.T) {
	assert.Equal(t, 1, PowInt(5, 0))
	assert.Equal(t, 5, PowInt(5, 1))
	assert.Equal(t, 1024, PowInt(2, 10))
	assert.Equal(t, -27, PowInt(-3, 3))
	assert.Equal(t, int8(-128), PowInt(int8(-2), 7))
	assert.Equal(t, uint8(0), PowInt(uint8(2), uint(8)))
	assert.Equal(t, 0, PowInt(0, 3))
}

func TestPowInt_NegativeExponentPanics(t *testing.T) {
	assert.Panics(t, func() { PowInt(2, -1) })
}

func TestMulChecked(t *testing.T) {
	cases := []struct {
		a, b int64
		ok   bool
	}{
		{0, math.MaxInt64, true},
		{math.MaxInt64, 1, true},
		{math.MaxInt64, 2, false},
		{-1, math.MinInt64, false},
		{math.MinInt64, -1, false},
		{math.MinInt64, 1, true},
		{1 << 31, 1 << 31, true},
		{1 << 32, 1 << 31, false},
		{-(1 << 31), 1 << 32, true},
	}
	for _, c := range cases {
		p, ok := MulChecked(c.a, c.b)
		assert.Equal(t, c.ok, ok, "%d * %d", c.a, c.b)
		if ok {
			assert.Equal(t, c.a*c.b, p)
		}
	}

	_, ok := MulChecked(uint64(math.MaxUint32+1), uint64(math.MaxUint32+1))
	assert.False(t, ok)
	p, ok := MulChecked(uint8(15), uint8(17))
	assert.True(t, ok)
	assert.Equal(t, uint8(255), p)
}
