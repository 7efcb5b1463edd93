package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceRealPresent(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"plain float", 3.2, 3.2},
		{"plain int", 7, 7},
		{"int64", int64(-2), -2},
		{"float32", float32(1.5), 1.5},
		{"complex value", complex(0.25, 9.0), 0.25},
		{"numeric string", "3.2", 3.2},
		{"parenthesized complex string", "(0.5+0.2j)", 0.5},
		{"negative imaginary part", "0.1-0.4j", 0.1},
		{"uppercase suffix", "(1.25+0.5J)", 1.25},
		{"scientific notation", "1.5e-2", 0.015},
		{"padded string", "  (2.5)  ", 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceReal(tt.in)
			require.True(t, got.Valid)
			assert.InDelta(t, tt.want, got.Float64, 1e-12)
		})
	}
}

func TestCoerceRealMissing(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"blank string", "   "},
		{"empty parens", "()"},
		{"garbage string", "not-a-number"},
		{"partial complex", "0.5+"},
		{"bool", true},
		{"slice", []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, CoerceReal(tt.in).Valid)
		})
	}
}
