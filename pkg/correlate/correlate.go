// Package correlate joins instances to the images built from their boot
// volumes: instance.VolumeID -> snapshot.VolumeID, snapshot.SnapshotID ->
// image.SnapshotID. Each instance is reduced to the age of its newest image.
package correlate

import (
	"sort"
	"time"

	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/utils"
)

// Correlate builds one summary per instance, in input order.
// now is the reference time for image ages.
func Correlate(instances []models.Instance, snapshots []models.Snapshot, images []models.Image, now time.Time) []models.InstanceSummary {
	snapshotsByVolume := make(map[string][]models.Snapshot)
	for _, snap := range snapshots {
		snapshotsByVolume[snap.VolumeID] = append(snapshotsByVolume[snap.VolumeID], snap)
	}

	imagesBySnapshot := make(map[string][]models.Image)
	for _, img := range images {
		if img.SnapshotID == "" {
			continue
		}
		imagesBySnapshot[img.SnapshotID] = append(imagesBySnapshot[img.SnapshotID], img)
	}

	summaries := make([]models.InstanceSummary, 0, len(instances))
	for _, inst := range instances {
		summary := models.InstanceSummary{Instance: inst}

		if inst.VolumeID != "" {
			var ages []models.ImageAge
			for _, snap := range snapshotsByVolume[inst.VolumeID] {
				for _, img := range imagesBySnapshot[snap.SnapshotID] {
					ages = append(ages, models.ImageAge{
						ImageID:      img.ImageID,
						CreationDate: img.CreationDate,
						DaysOld:      utils.DaysBetween(img.CreationDate, now),
					})
				}
			}

			if len(ages) > 0 {
				// Oldest first; the tail is the newest image.
				sort.SliceStable(ages, func(i, j int) bool {
					return ages[i].DaysOld > ages[j].DaysOld
				})
				newest := ages[len(ages)-1]
				summary.Images = []models.ImageAge{newest}
				summary.HasImage = true
				summary.MinAgeDays = newest.DaysOld
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// WithImages returns only the summaries that resolved to an image
func WithImages(summaries []models.InstanceSummary) []models.InstanceSummary {
	var out []models.InstanceSummary
	for _, s := range summaries {
		if s.HasImage {
			out = append(out, s)
		}
	}
	return out
}
