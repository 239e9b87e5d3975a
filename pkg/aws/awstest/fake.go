// Package awstest provides in-memory fakes of the AWS clients used by awsls.
package awstest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	awsls "github.com/younsl/awsls/pkg/aws"
)

// EC2 fakes the EC2 API of one region
type EC2 struct {
	Regions    []string
	RegionsErr error

	// InstancePages are returned one per DescribeInstances call
	InstancePages [][]types.Instance
	InstancesErr  error

	InstanceTypes   map[types.InstanceType]types.InstanceTypeInfo
	InstanceTypeErr map[types.InstanceType]error

	DescribeRegionsCalls   int
	DescribeInstancesCalls int
	StateFilters           [][]string
}

// Instance builds a minimal instance for InstancePages
func Instance(id string, instanceType types.InstanceType, state types.InstanceStateName) types.Instance {
	return types.Instance{
		InstanceId:   aws.String(id),
		InstanceType: instanceType,
		State:        &types.InstanceState{Name: state},
	}
}

// InstanceTypeInfo builds an instance type description
func InstanceTypeInfo(instanceType types.InstanceType, cores int32, memoryMiB int64) types.InstanceTypeInfo {
	return types.InstanceTypeInfo{
		InstanceType: instanceType,
		VCpuInfo:     &types.VCpuInfo{DefaultCores: aws.Int32(cores)},
		MemoryInfo:   &types.MemoryInfo{SizeInMiB: aws.Int64(memoryMiB)},
	}
}

// DescribeRegions implements awsls.EC2API
func (f *EC2) DescribeRegions(_ context.Context, _ *ec2.DescribeRegionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	f.DescribeRegionsCalls++
	if f.RegionsErr != nil {
		return nil, f.RegionsErr
	}

	out := &ec2.DescribeRegionsOutput{}
	for _, name := range f.Regions {
		out.Regions = append(out.Regions, types.Region{RegionName: aws.String(name)})
	}
	return out, nil
}

// DescribeInstances implements awsls.EC2API, one reservation per page
func (f *EC2) DescribeInstances(_ context.Context, params *ec2.DescribeInstancesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.DescribeInstancesCalls++
	for _, filter := range params.Filters {
		if aws.ToString(filter.Name) == "instance-state-name" {
			f.StateFilters = append(f.StateFilters, filter.Values)
		}
	}
	if f.InstancesErr != nil {
		return nil, f.InstancesErr
	}

	page, err := pageIndex(params.NextToken)
	if err != nil {
		return nil, err
	}

	out := &ec2.DescribeInstancesOutput{}
	if page < len(f.InstancePages) {
		out.Reservations = []types.Reservation{{Instances: f.InstancePages[page]}}
	}
	if page+1 < len(f.InstancePages) {
		out.NextToken = aws.String(strconv.Itoa(page + 1))
	}
	return out, nil
}

// DescribeInstanceTypes implements awsls.EC2API
func (f *EC2) DescribeInstanceTypes(_ context.Context, params *ec2.DescribeInstanceTypesInput, _ ...func(*ec2.Options)) (*ec2.DescribeInstanceTypesOutput, error) {
	out := &ec2.DescribeInstanceTypesOutput{}
	for _, instanceType := range params.InstanceTypes {
		if err := f.InstanceTypeErr[instanceType]; err != nil {
			return nil, err
		}
		if info, ok := f.InstanceTypes[instanceType]; ok {
			out.InstanceTypes = append(out.InstanceTypes, info)
		}
	}
	return out, nil
}

// S3 fakes the S3 API
type S3 struct {
	Buckets    []string
	BucketsErr error

	// Locations maps a bucket to its location constraint
	Locations map[string]string

	// ObjectPages maps a bucket to pages of object sizes
	ObjectPages map[string][][]int64
	ObjectsErr  map[string]error

	ListBucketsCalls int
	// ObjectRegions records the region of every ListObjectsV2 request
	ObjectRegions []string
}

// ListBuckets implements awsls.S3API
func (f *S3) ListBuckets(_ context.Context, _ *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	f.ListBucketsCalls++
	if f.BucketsErr != nil {
		return nil, f.BucketsErr
	}

	out := &s3.ListBucketsOutput{}
	for _, name := range f.Buckets {
		out.Buckets = append(out.Buckets, s3types.Bucket{Name: aws.String(name)})
	}
	return out, nil
}

// GetBucketLocation implements awsls.S3API
func (f *S3) GetBucketLocation(_ context.Context, params *s3.GetBucketLocationInput, _ ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error) {
	return &s3.GetBucketLocationOutput{
		LocationConstraint: s3types.BucketLocationConstraint(f.Locations[aws.ToString(params.Bucket)]),
	}, nil
}

// ListObjectsV2 implements awsls.S3API
func (f *S3) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var o s3.Options
	for _, fn := range optFns {
		fn(&o)
	}
	f.ObjectRegions = append(f.ObjectRegions, o.Region)

	bucket := aws.ToString(params.Bucket)
	if err := f.ObjectsErr[bucket]; err != nil {
		return nil, err
	}

	page, err := pageIndex(params.ContinuationToken)
	if err != nil {
		return nil, err
	}

	pages := f.ObjectPages[bucket]
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	if page < len(pages) {
		for i, size := range pages[page] {
			out.Contents = append(out.Contents, s3types.Object{
				Key:  aws.String(fmt.Sprintf("%d/%d", page, i)),
				Size: aws.Int64(size),
			})
		}
	}
	if page+1 < len(pages) {
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(strconv.Itoa(page + 1))
	}
	return out, nil
}

// STS fakes the STS API
type STS struct {
	Output *sts.GetCallerIdentityOutput
	Err    error
}

// GetCallerIdentity implements awsls.STSAPI
func (f *STS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Output, nil
}

// Factory hands out the fakes above and records what was requested
type Factory struct {
	EC2Clients map[string]*EC2
	S3Client   *S3
	STSClient  *STS

	EC2Regions []string
	S3Calls    int
	STSCalls   int
}

// EC2 implements awsls.ClientFactory
func (f *Factory) EC2(_ context.Context, region string) (awsls.EC2API, error) {
	f.EC2Regions = append(f.EC2Regions, region)
	client, ok := f.EC2Clients[region]
	if !ok {
		return nil, fmt.Errorf("no fake EC2 client for region %s", region)
	}
	return client, nil
}

// S3 implements awsls.ClientFactory
func (f *Factory) S3(_ context.Context) (awsls.S3API, error) {
	f.S3Calls++
	if f.S3Client == nil {
		return nil, fmt.Errorf("no fake S3 client")
	}
	return f.S3Client, nil
}

// STS implements awsls.ClientFactory
func (f *Factory) STS(_ context.Context) (awsls.STSAPI, error) {
	f.STSCalls++
	if f.STSClient == nil {
		return nil, fmt.Errorf("no fake STS client")
	}
	return f.STSClient, nil
}

// Requested reports whether any client was built
func (f *Factory) Requested() bool {
	return len(f.EC2Regions) > 0 || f.S3Calls > 0 || f.STSCalls > 0
}

var (
	_ awsls.EC2API        = (*EC2)(nil)
	_ awsls.S3API         = (*S3)(nil)
	_ awsls.STSAPI        = (*STS)(nil)
	_ awsls.ClientFactory = (*Factory)(nil)
)

func pageIndex(token *string) (int, error) {
	if token == nil {
		return 0, nil
	}
	page, err := strconv.Atoi(*token)
	if err != nil {
		return 0, fmt.Errorf("invalid page token %q", *token)
	}
	return page, nil
}
