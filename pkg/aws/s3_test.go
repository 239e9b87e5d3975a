package aws_test

import (
	"context"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/awsls/internal/models"
	"github.com/younsl/awsls/pkg/aws"
	"github.com/younsl/awsls/pkg/aws/awstest"
)

func TestGetBucketNames(t *testing.T) {
	fake := &awstest.S3{Buckets: []string{"logs", "assets", "backups"}}

	client := aws.NewS3Client(fake, discardLogger())
	names, err := client.GetBucketNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"logs", "assets", "backups"}, names)
}

func TestGetBucket_SumsAllObjectPages(t *testing.T) {
	fake := &awstest.S3{
		Locations: map[string]string{"assets": "ap-northeast-2"},
		ObjectPages: map[string][][]int64{
			"assets": {
				{100, 200, 0},
				{1024},
				{1 << 30, 7},
			},
		},
	}

	client := aws.NewS3Client(fake, discardLogger())
	bucket, err := client.GetBucket(context.Background(), "assets")
	require.NoError(t, err)

	assert.Equal(t, models.BucketInfo{
		BucketName:  "assets",
		Region:      "ap-northeast-2",
		ObjectCount: 6,
		TotalSize:   100 + 200 + 0 + 1024 + (1 << 30) + 7,
	}, bucket)
	assert.Equal(t, []string{"ap-northeast-2", "ap-northeast-2", "ap-northeast-2"}, fake.ObjectRegions)
}

func TestGetBucket_EmptyBucket(t *testing.T) {
	fake := &awstest.S3{}

	client := aws.NewS3Client(fake, discardLogger())
	bucket, err := client.GetBucket(context.Background(), "empty")
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", bucket.Region)
	assert.Zero(t, bucket.ObjectCount)
	assert.Zero(t, bucket.TotalSize)
}

func TestGetBucket_ListError(t *testing.T) {
	fake := &awstest.S3{
		ObjectsErr: map[string]error{
			"locked": &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"},
		},
	}

	client := aws.NewS3Client(fake, discardLogger())
	_, err := client.GetBucket(context.Background(), "locked")
	require.Error(t, err)
	assert.ErrorIs(t, err, aws.ErrCredentials)
	assert.Contains(t, err.Error(), "locked")
}
