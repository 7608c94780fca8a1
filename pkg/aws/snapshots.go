package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/utils"
)

// MaxVolumeIDsPerRequest caps the values sent in a single volume-id filter
const MaxVolumeIDsPerRequest = 200

// ListSnapshots returns the snapshots taken from any of the given volumes.
// No request is made when volumeIDs holds no usable id.
func (c *EC2Client) ListSnapshots(ctx context.Context, volumeIDs []string) ([]models.Snapshot, error) {
	ids := utils.DedupeStrings(volumeIDs)
	snapshots := []models.Snapshot{}
	if len(ids) == 0 {
		return snapshots, nil
	}

	for _, batch := range utils.Batches(ids, MaxVolumeIDsPerRequest) {
		input := &ec2.DescribeSnapshotsInput{
			Filters: []types.Filter{{
				Name:   aws.String("volume-id"),
				Values: batch,
			}},
		}

		paginator := ec2.NewDescribeSnapshotsPaginator(c.client, input)
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("error querying EBS snapshots in %s: %w", c.region, err)
			}

			for _, snap := range page.Snapshots {
				snapshots = append(snapshots, models.Snapshot{
					SnapshotID:  utils.SafeDeref(snap.SnapshotId),
					VolumeID:    utils.SafeDeref(snap.VolumeId),
					StartTime:   utils.SafeTime(snap.StartTime),
					Description: utils.SafeDeref(snap.Description),
				})
			}
		}
	}

	return snapshots, nil
}
