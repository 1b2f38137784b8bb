package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafe(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := byte(b)
		want := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_' || c == '.'
		assert.Equal(t, want, IsSafe(c), "byte %#02x", c)
	}
}

func TestIsTagSafe(t *testing.T) {
	tests := []struct {
		input    byte
		expected bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'_', true},
		{'.', false},
		{':', false},
		{'"', false},
		{' ', false},
		{0x00, false},
		{0x7f, false},
		{0xc3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsTagSafe(tt.input), "byte %#02x", tt.input)
	}
}

func TestTagSafeIsSubsetOfSafe(t *testing.T) {
	for b := 0; b < 256; b++ {
		if IsTagSafe(byte(b)) {
			assert.True(t, IsSafe(byte(b)), "byte %#02x", b)
		}
	}
}
