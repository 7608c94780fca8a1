package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/utils"
)

// ListImages returns the private AMIs owned by the calling account.
// Images without block device mappings are skipped.
func (c *EC2Client) ListImages(ctx context.Context) ([]models.Image, error) {
	input := &ec2.DescribeImagesInput{
		Owners: []string{"self"},
	}

	images := []models.Image{}

	paginator := ec2.NewDescribeImagesPaginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying AMIs in %s: %w", c.region, err)
		}

		for _, img := range page.Images {
			if len(img.BlockDeviceMappings) == 0 || utils.SafeBool(img.Public) {
				continue
			}

			// An image without a readable creation date has no age and cannot be classified
			created, err := utils.ParseImageCreationDate(utils.SafeDeref(img.CreationDate))
			if err != nil {
				continue
			}

			images = append(images, models.Image{
				ImageID:      utils.SafeDeref(img.ImageId),
				SnapshotID:   firstSnapshotID(img.BlockDeviceMappings),
				CreationDate: created,
				Name:         utils.SafeDeref(img.Name),
				Description:  utils.SafeDeref(img.Description),
				Public:       false,
			})
		}
	}

	return images, nil
}

// firstSnapshotID returns the snapshot of the first mapping only
func firstSnapshotID(mappings []types.BlockDeviceMapping) string {
	if len(mappings) == 0 || mappings[0].Ebs == nil {
		return ""
	}
	return utils.SafeDeref(mappings[0].Ebs.SnapshotId)
}
