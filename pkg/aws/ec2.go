package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2API is the subset of the EC2 API used to build the inventory
type EC2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeSnapshots(ctx context.Context, params *ec2.DescribeSnapshotsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSnapshotsOutput, error)
	DescribeImages(ctx context.Context, params *ec2.DescribeImagesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeImagesOutput, error)
}

// EC2Client struct for EC2 client
type EC2Client struct {
	client EC2API
	region string
}

// NewEC2Client creates a new EC2Client for the region
func NewEC2Client(cfg aws.Config, region string) *EC2Client {
	return NewEC2ClientWithAPI(ec2.NewFromConfig(ForRegion(cfg, region)), region)
}

// NewEC2ClientWithAPI wraps an existing EC2 API implementation
func NewEC2ClientWithAPI(api EC2API, region string) *EC2Client {
	return &EC2Client{
		client: api,
		region: region,
	}
}

// Region returns the region the client queries
func (c *EC2Client) Region() string {
	return c.region
}

// ListRegions returns the regions enabled for the account
func (c *EC2Client) ListRegions(ctx context.Context) ([]string, error) {
	result, err := c.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("error describing regions: %w", err)
	}

	regions := make([]string, 0, len(result.Regions))
	for _, region := range result.Regions {
		if region.RegionName == nil {
			continue
		}
		regions = append(regions, *region.RegionName)
	}
	return regions, nil
}
