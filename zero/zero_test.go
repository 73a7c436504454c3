package zero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	assert.Equal(t, 0, ZeroValue[int]())
	assert.Equal(t, "", ZeroValue[string]())
	assert.Nil(t, ZeroValue[*int]())
}

func TestIsZeroValue(t *testing.T) {
	assert.True(t, IsZeroValue(0))
	assert.True(t, IsZeroValue(math.Copysign(0, -1)))
	assert.False(t, IsZeroValue(math.NaN()))
	assert.False(t, IsZeroValue("x"))
}
