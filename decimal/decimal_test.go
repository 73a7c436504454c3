package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimal_ZeroValueIsZero(t *testing.T) {
	var d Decimal
	assert.True(t, d.IsZero())
	assert.True(t, d.IsFinite())
	assert.Equal(t, "0", d.String())
	assert.True(t, d.Add(New(5, -1)).Equal(New(5, -1)))
}

func TestDecimal_Arithmetic(t *testing.T) {
	a := New(15, -1)
	b := New(2, 0)
	assert.Equal(t, "3.5", a.Add(b).String())
	assert.Equal(t, "-0.5", a.Subtract(b).String())
	assert.True(t, a.Multiply(b).Equal(New(3, 0)))
	assert.True(t, a.Divide(b).Equal(New(75, -2)))
	assert.True(t, New(7, 0).Remainder(b).Equal(New(1, 0)))
	assert.True(t, a.Negate().Equal(New(-15, -1)))
}

func TestDecimal_DivisionByZero(t *testing.T) {
	assert.True(t, New(1, 0).Divide(New(0, 0)).IsInfinite())
	assert.Equal(t, -1, New(-1, 0).Divide(New(0, 0)).Compare(New(0, 0)))
	assert.True(t, New(0, 0).Divide(New(0, 0)).IsNaN())
}

func TestDecimal_OverflowSaturates(t *testing.T) {
	big := New(1, MaxExponent)
	assert.True(t, big.IsFinite())
	assert.True(t, big.Multiply(New(10, 0)).IsInfinite())
}

func TestDecimal_RoundsToPrecision(t *testing.T) {
	third := New(1, 0).Divide(New(3, 0))
	assert.Equal(t, "0.3333333333333333333333333333333333", third.String())
}

func TestDecimal_EqualityAndOrder(t *testing.T) {
	var d Decimal
	assert.True(t, New(10, -1).Equal(New(1, 0)))
	assert.False(t, d.NaN().Equal(d.NaN()))
	assert.Equal(t, -1, d.NaN().Compare(New(1, 0)))
	assert.Equal(t, 1, New(1, 0).Compare(d.NaN()))
	assert.Equal(t, 0, d.NaN().Compare(d.NaN()))
	assert.Equal(t, 1, d.Infinity().Compare(New(1, 100)))
	assert.Equal(t, -1, d.Infinity().Negate().Compare(New(-1, 100)))
	assert.False(t, d.NaN().IsZero())
}

func TestParse(t *testing.T) {
	d, err := Parse("1.25")
	require.Nil(t, err)
	assert.True(t, d.Equal(New(125, -2)))

	d, err = Parse("NaN")
	require.Nil(t, err)
	assert.True(t, d.IsNaN())

	d, err = Parse("-Infinity")
	require.Nil(t, err)
	assert.True(t, d.IsInfinite())
	assert.Equal(t, "-Infinity", d.String())

	_, err = Parse("one")
	assert.NotNil(t, err)
}
