package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/younsl/awsls/pkg/utils"
)

// EC2API is the part of the EC2 API used to enumerate regions and instances
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeInstanceTypes(ctx context.Context, params *ec2.DescribeInstanceTypesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error)
}

// S3API is the part of the S3 API used to enumerate buckets and their objects
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
	GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// STSAPI resolves the identity behind the loaded credentials
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var (
	_ EC2API = (*ec2.Client)(nil)
	_ S3API  = (*s3.Client)(nil)
	_ STSAPI = (*sts.Client)(nil)
)

// ClientFactory builds service clients for a command
type ClientFactory interface {
	EC2(ctx context.Context, region string) (EC2API, error)
	S3(ctx context.Context) (S3API, error)
	STS(ctx context.Context) (STSAPI, error)
}

// SDKClientFactory builds clients backed by the AWS SDK
type SDKClientFactory struct {
	opts []Option
}

// NewClientFactory returns a factory loading config with the given options
func NewClientFactory(opts ...Option) *SDKClientFactory {
	return &SDKClientFactory{opts: opts}
}

// EC2 returns an EC2 client bound to region
func (f *SDKClientFactory) EC2(ctx context.Context, region string) (EC2API, error) {
	cfg, err := LoadAWSConfig(ctx, append(f.opts, WithRegion(region))...)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}

// S3 returns an S3 client. Bucket level calls override the region per request.
func (f *SDKClientFactory) S3(ctx context.Context) (S3API, error) {
	cfg, err := LoadAWSConfig(ctx, f.opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		cfg.Region = utils.GetDefaultRegion()
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true // Use path-style addressing which is more reliable
	}), nil
}

// STS returns an STS client
func (f *SDKClientFactory) STS(ctx context.Context) (STSAPI, error) {
	cfg, err := LoadAWSConfig(ctx, f.opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Region == "" {
		cfg.Region = utils.GetDefaultRegion()
	}
	return sts.NewFromConfig(cfg), nil
}
