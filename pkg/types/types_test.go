// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverterConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   ConverterConfig
		want ConverterConfig
	}{
		{"zero", ConverterConfig{}, ConverterConfig{MaxNesting: 4, MaxIndent: 255}},
		{"negative", ConverterConfig{MaxNesting: -1, MaxIndent: -5}, ConverterConfig{MaxNesting: 4, MaxIndent: 255}},
		{"kept", ConverterConfig{MaxNesting: 2, MaxIndent: 8, Passthrough: true}, ConverterConfig{MaxNesting: 2, MaxIndent: 8, Passthrough: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults())
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		lines, failures int
		want            RunStatus
	}{
		{0, 0, RunDone},
		{10, 0, RunDone},
		{10, 3, RunPartial},
		{10, 10, RunFailed},
		{0, 1, RunFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.lines, tt.failures), "lines=%d failures=%d", tt.lines, tt.failures)
	}
}
