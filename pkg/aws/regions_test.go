package aws_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/awsls/pkg/aws"
	"github.com/younsl/awsls/pkg/aws/awstest"
)

func TestGetRegions(t *testing.T) {
	fake := &awstest.EC2{Regions: []string{"us-east-1", "eu-west-1", "ap-northeast-2"}}

	regions, err := aws.GetRegions(context.Background(), fake)
	require.NoError(t, err)
	assert.Equal(t, []string{"us-east-1", "eu-west-1", "ap-northeast-2"}, regions)
	assert.Equal(t, 1, fake.DescribeRegionsCalls)
}

func TestGetRegions_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		credentials bool
	}{
		{
			name:        "auth failure",
			err:         &smithy.GenericAPIError{Code: "AuthFailure", Message: "AWS was not able to validate the provided access credentials"},
			credentials: true,
		},
		{
			name:        "missing credentials",
			err:         errors.New("operation error EC2: DescribeRegions, failed to retrieve credentials: no EC2 IMDS role found"),
			credentials: true,
		},
		{
			name:        "throttled",
			err:         &smithy.GenericAPIError{Code: "RequestLimitExceeded", Message: "slow down"},
			credentials: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &awstest.EC2{RegionsErr: tt.err}

			regions, err := aws.GetRegions(context.Background(), fake)
			require.Error(t, err)
			assert.Nil(t, regions)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.credentials, errors.Is(err, aws.ErrCredentials))
		})
	}
}
