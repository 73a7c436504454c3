package comparison

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(1.0, 1.0, 0))
	assert.False(t, ApproxEqual(1.0, 1.0000001, 0))
	assert.True(t, ApproxEqual(1.0, 1.0000001, 1e-6))
	assert.True(t, ApproxEqual(1e12, 1e12+1, 1e-9))
	assert.True(t, ApproxEqual(float32(0.1), float32(0.1), 0))
	assert.True(t, ApproxEqual(math.Inf(1), math.Inf(1), 0))
	assert.False(t, ApproxEqual(math.NaN(), math.NaN(), 1))
}

func TestIdentical(t *testing.T) {
	assert.True(t, Identical(math.NaN(), math.NaN()))
	assert.True(t, Identical(2.0, 2.0))
	assert.False(t, Identical(math.NaN(), 2.0))
	assert.True(t, Identical(float32(math.Inf(-1)), float32(math.Inf(-1))))
}
