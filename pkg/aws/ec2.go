package aws

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/awsls/internal/models"
)

// EC2Client lists instances of a single region
type EC2Client struct {
	client EC2API
	region string
	logger *slog.Logger
}

// NewEC2Client creates a new EC2Client
func NewEC2Client(client EC2API, region string, logger *slog.Logger) *EC2Client {
	return &EC2Client{
		client: client,
		region: region,
		logger: logger.With(slog.String("region", region)),
	}
}

// GetInstances returns the instances of the region whose state is one of states
func (c *EC2Client) GetInstances(ctx context.Context, states []models.InstanceState) ([]models.InstanceInfo, error) {
	values := make([]string, 0, len(states))
	for _, state := range states {
		values = append(values, string(state))
	}

	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: values,
			},
		},
	}

	instances := []models.InstanceInfo{}

	paginator := ec2.NewDescribeInstancesPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(err, "error querying EC2 instances in %s", c.region)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				details, err := c.getInstanceTypeDetails(ctx, instance.InstanceType)
				if err != nil {
					return nil, err
				}

				var state models.InstanceState
				if instance.State != nil {
					state = models.InstanceState(instance.State.Name)
				}

				instances = append(instances, models.InstanceInfo{
					InstanceID:   aws.ToString(instance.InstanceId),
					InstanceType: string(instance.InstanceType),
					State:        state,
					Details:      details,
					Region:       c.region,
				})
			}
		}
	}

	c.logger.Debug("listed instances", slog.Int("count", len(instances)))
	return instances, nil
}

// getInstanceTypeDetails resolves cores and memory of an instance type.
// A failed lookup is not fatal: the details come back unknown.
// Only cancellation of ctx is returned as an error.
func (c *EC2Client) getInstanceTypeDetails(ctx context.Context, instanceType types.InstanceType) (models.InstanceTypeDetails, error) {
	result, err := c.client.DescribeInstanceTypes(ctx, &ec2.DescribeInstanceTypesInput{
		InstanceTypes: []types.InstanceType{instanceType},
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.UnknownInstanceType(), ctxErr
		}
		c.logger.Warn("instance type lookup failed",
			slog.String("type", string(instanceType)),
			slog.Any("error", err))
		return models.UnknownInstanceType(), nil
	}

	if len(result.InstanceTypes) == 0 {
		c.logger.Warn("instance type not found", slog.String("type", string(instanceType)))
		return models.UnknownInstanceType(), nil
	}

	info := result.InstanceTypes[0]
	if info.VCpuInfo == nil || info.VCpuInfo.DefaultCores == nil ||
		info.MemoryInfo == nil || info.MemoryInfo.SizeInMiB == nil {
		c.logger.Warn("instance type has no cpu or memory info", slog.String("type", string(instanceType)))
		return models.UnknownInstanceType(), nil
	}

	return models.KnownInstanceType(*info.VCpuInfo.DefaultCores, *info.MemoryInfo.SizeInMiB), nil
}
