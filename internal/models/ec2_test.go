package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstanceState(t *testing.T) {
	tests := []struct {
		input    string
		expected InstanceState
		wantErr  bool
	}{
		{input: "running", expected: StateRunning},
		{input: "stopped", expected: StateStopped},
		{input: "terminated", expected: StateTerminated},
		{input: "pending", wantErr: true},
		{input: "Running", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			state, err := ParseInstanceState(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestInstanceTypeDetailsStrings(t *testing.T) {
	known := KnownInstanceType(2, 8192)
	assert.Equal(t, "2", known.CoresString())
	assert.Equal(t, "8192", known.MemoryString())

	unknown := UnknownInstanceType()
	assert.False(t, unknown.Known)
	assert.Equal(t, NotAvailable, unknown.CoresString())
	assert.Equal(t, NotAvailable, unknown.MemoryString())
}
