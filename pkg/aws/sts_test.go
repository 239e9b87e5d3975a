package aws_test

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/awsls/internal/models"
	"github.com/younsl/awsls/pkg/aws"
	"github.com/younsl/awsls/pkg/aws/awstest"
)

func TestGetCallerIdentity(t *testing.T) {
	fake := &awstest.STS{Output: &sts.GetCallerIdentityOutput{
		Account: awssdk.String("123456789012"),
		Arn:     awssdk.String("arn:aws:iam::123456789012:user/ops"),
		UserId:  awssdk.String("AIDAEXAMPLE"),
	}}

	identity, err := aws.GetCallerIdentity(context.Background(), fake)
	require.NoError(t, err)
	assert.Equal(t, models.CallerIdentity{
		AccountID: "123456789012",
		ARN:       "arn:aws:iam::123456789012:user/ops",
		UserID:    "AIDAEXAMPLE",
	}, identity)
}

func TestGetCallerIdentity_InvalidToken(t *testing.T) {
	fake := &awstest.STS{Err: &smithy.GenericAPIError{Code: "InvalidClientTokenId"}}

	_, err := aws.GetCallerIdentity(context.Background(), fake)
	assert.ErrorIs(t, err, aws.ErrCredentials)
}
