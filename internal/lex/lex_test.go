package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_IsInvalidIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Foo", false},
		{"café", false},
		{"pkg.Type.Method", false},
		{"😀", false},
		{"", true},
		{"x$INVALID$", true},
		{"$INVALID$", true},
		{"$INVALID", false},
	}

	var c Checker
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsInvalidIdentifier(tt.input))
		})
	}
}

func TestInvalidate(t *testing.T) {
	var c Checker
	assert.True(t, c.IsInvalidIdentifier(Invalidate("name")))
}
