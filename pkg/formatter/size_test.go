package formatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanReadableSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{size: 0, expected: "0.0 B"},
		{size: 1, expected: "1.0 B"},
		{size: 1023, expected: "1023.0 B"},
		{size: 1024, expected: "1.0 KiB"},
		{size: 1536, expected: "1.5 KiB"},
		{size: 1048576, expected: "1.0 MiB"},
		{size: 5 * 1024 * 1024 * 1024, expected: "5.0 GiB"},
		{size: 1 << 40, expected: "1.0 TiB"},
		{size: 1 << 50, expected: "1.0 PiB"},
		{size: 1 << 60, expected: "1.0 EiB"},
		{size: math.MaxInt64, expected: "8.0 EiB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanReadableSize(tt.size))
		})
	}
}
