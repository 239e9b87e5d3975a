package aws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/younsl/awsls/internal/models"
	"github.com/younsl/awsls/pkg/utils"
)

// S3Client lists buckets and sums the size of their objects
type S3Client struct {
	client S3API
	logger *slog.Logger
}

// NewS3Client creates a new S3Client
func NewS3Client(client S3API, logger *slog.Logger) *S3Client {
	return &S3Client{
		client: client,
		logger: logger,
	}
}

// GetBucketNames returns the names of all buckets owned by the caller
func (c *S3Client) GetBucketNames(ctx context.Context) ([]string, error) {
	var names []string

	paginator := s3.NewListBucketsPaginator(c.client, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(err, "error listing S3 buckets")
		}
		for _, bucket := range page.Buckets {
			names = append(names, aws.ToString(bucket.Name))
		}
	}

	return names, nil
}

// GetBucket returns the bucket with its total size, summed over every object
func (c *S3Client) GetBucket(ctx context.Context, bucketName string) (models.BucketInfo, error) {
	bucketInfo := models.BucketInfo{
		BucketName: bucketName,
	}

	region, err := c.getBucketRegion(ctx, bucketName)
	if err != nil {
		return bucketInfo, err
	}
	bucketInfo.Region = region

	objectCount, totalSize, err := c.getBucketSize(ctx, bucketName, region)
	if err != nil {
		return bucketInfo, err
	}
	bucketInfo.ObjectCount = objectCount
	bucketInfo.TotalSize = totalSize

	c.logger.Debug("bucket analyzed",
		slog.String("bucket", bucketName),
		slog.String("region", region),
		slog.Int64("objects", objectCount),
		slog.Int64("bytes", totalSize))

	return bucketInfo, nil
}

// getBucketRegion determines the home region of a bucket
func (c *S3Client) getBucketRegion(ctx context.Context, bucketName string) (string, error) {
	location, err := c.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return "", wrapAPIError(err, "error getting location of bucket %s", bucketName)
	}

	return utils.BucketRegion(string(location.LocationConstraint)), nil
}

// getBucketSize lists every object of the bucket from its home region
func (c *S3Client) getBucketSize(ctx context.Context, bucketName, region string) (int64, int64, error) {
	var objectCount, totalSize int64

	inRegion := func(o *s3.Options) {
		o.Region = region
	}

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx, inRegion)
		if err != nil {
			return 0, 0, wrapAPIError(err, "error listing objects of bucket %s", bucketName)
		}
		for _, object := range page.Contents {
			objectCount++
			totalSize += aws.ToInt64(object.Size)
		}
	}

	return objectCount, totalSize, nil
}
