package aws_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/younsl/awsls/pkg/aws"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "invalid token", err: &smithy.GenericAPIError{Code: "InvalidClientTokenId"}, expected: true},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, expected: true},
		{name: "wrapped expired token", err: fmt.Errorf("call failed: %w", &smithy.GenericAPIError{Code: "ExpiredToken"}), expected: true},
		{name: "no such bucket", err: &smithy.GenericAPIError{Code: "NoSuchBucket"}, expected: false},
		{name: "credential chain exhausted", err: errors.New("failed to retrieve credentials: no valid providers in chain"), expected: true},
		{name: "network", err: errors.New("dial tcp: i/o timeout"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aws.IsAuthError(tt.err))
		})
	}
}
