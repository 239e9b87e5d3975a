package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/younsl/awsls/internal/models"
)

// GetCallerIdentity returns the account and principal behind the credentials
func GetCallerIdentity(ctx context.Context, client STSAPI) (models.CallerIdentity, error) {
	output, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return models.CallerIdentity{}, wrapAPIError(err, "error getting caller identity")
	}

	return models.CallerIdentity{
		AccountID: aws.ToString(output.Account),
		ARN:       aws.ToString(output.Arn),
		UserID:    aws.ToString(output.UserId),
	}, nil
}
