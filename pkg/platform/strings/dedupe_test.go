package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ident string

func TestDedupeTrimmed(t *testing.T) {
	tests := []struct {
		name     string
		input    []ident
		expected []ident
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []ident{}, expected: []ident{}},
		{
			name:     "removes repeats preserving order",
			input:    []ident{"12345678910", "10987654321", "12345678910"},
			expected: []ident{"12345678910", "10987654321"},
		},
		{
			name:     "trims and drops blanks",
			input:    []ident{" 12345678910 ", "", "   ", "12345678910"},
			expected: []ident{"12345678910"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeTrimmed(tt.input))
		})
	}
}
