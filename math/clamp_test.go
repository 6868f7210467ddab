package math

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{"inside", 60, 60},
		{"below", -3, 0},
		{"above", 122, 120},
		{"at lower bound", 0, 0},
		{"at upper bound", 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.val, 0, 120))
		})
	}
}

func TestStep(t *testing.T) {
	assert.Equal(t, 120.0, Step(118.0, 2.0, 0, 120))
	assert.Equal(t, 72.0, Step(70.0, 2.0, 0, 120))
	assert.Equal(t, 0.0, Step(3.0, -5.0, 0, 120))
	assert.Equal(t, 5, Step(10, -5, 0, 120))
}

func TestWithin(t *testing.T) {
	assert.True(t, Within(0.0, 0, 120))
	assert.True(t, Within(120.0, 0, 120))
	assert.False(t, Within(120.1, 0, 120))
	assert.False(t, Within(-0.1, 0, 120))
	assert.False(t, Within(stdmath.NaN(), 0, 120))
	assert.False(t, Within(stdmath.Inf(1), 0, 120))
	assert.True(t, Within(5, 0, 10))
}

func TestNonNegative(t *testing.T) {
	assert.True(t, NonNegative(0))
	assert.True(t, NonNegative(1e9))
	assert.False(t, NonNegative(-0.001))
	assert.False(t, NonNegative(stdmath.NaN()))
	assert.False(t, NonNegative(stdmath.Inf(1)))
	assert.False(t, NonNegative(stdmath.Inf(-1)))
}
