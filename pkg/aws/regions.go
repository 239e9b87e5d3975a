package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// GetRegions returns the regions enabled for the account in provider order
func GetRegions(ctx context.Context, client EC2API) ([]string, error) {
	result, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, wrapAPIError(err, "error describing regions")
	}

	regions := make([]string, 0, len(result.Regions))
	for _, region := range result.Regions {
		if name := aws.ToString(region.RegionName); name != "" {
			regions = append(regions, name)
		}
	}
	return regions, nil
}
