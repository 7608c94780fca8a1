package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/utils"
)

// ListInstances returns the instances matching the tag filter with their boot volume
func (c *EC2Client) ListInstances(ctx context.Context, filter models.TagFilter) ([]models.Instance, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: utils.TagFilters(filter),
	}

	instances := []models.Instance{}

	paginator := ec2.NewDescribeInstancesPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying EC2 instances in %s: %w", c.region, err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				rootDevice := utils.SafeDeref(instance.RootDeviceName)
				instances = append(instances, models.Instance{
					InstanceID:     utils.SafeDeref(instance.InstanceId),
					Name:           utils.GetName(instance.Tags),
					VolumeID:       rootVolumeID(instance.BlockDeviceMappings, rootDevice),
					RootDeviceName: rootDevice,
				})
			}
		}
	}

	return instances, nil
}

// rootVolumeID returns the EBS volume mapped to the root device.
// When several mappings name the root device the last one wins.
func rootVolumeID(mappings []types.InstanceBlockDeviceMapping, rootDevice string) string {
	volumeID := ""
	for _, mapping := range mappings {
		if utils.SafeDeref(mapping.DeviceName) != rootDevice {
			continue
		}
		if mapping.Ebs != nil {
			volumeID = utils.SafeDeref(mapping.Ebs.VolumeId)
		} else {
			volumeID = ""
		}
	}
	return volumeID
}
