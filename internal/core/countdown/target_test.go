package countdown

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTargetInput(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"5", 5},
		{"  42", 42},
		{"+7", 7},
		{"-5", -5},
		{"0", 0},
		{"12abc", 12},
		{"3.9", 3},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"   ", 0},
		{"99999999999999999999999", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTargetInput(tt.input))
		})
	}
}

func TestClampTarget(t *testing.T) {
	assert.Equal(t, 1, ClampTarget(0))
	assert.Equal(t, 1, ClampTarget(-5))
	assert.Equal(t, 1, ClampTarget(1))
	assert.Equal(t, 3600, ClampTarget(3600))
}
