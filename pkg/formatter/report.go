package formatter

import (
	"fmt"
	"strings"

	"github.com/younsl/amireport/internal/models"
)

const (
	ruleHeavy   = "================================================"
	ruleLight   = "------------------------------------------------"
	columnTitle = "Region | InstanceId | Days | ImageId"
)

// FailedRegionsTitle heads the block listing regions that could not be collected
const FailedRegionsTitle = "Regions that could not be collected"

// BuildReport renders the plain text report body.
// Regions are reported in the given order; a region without a successful
// result contributes no lines to the buckets.
func BuildReport(regions []string, results []models.RegionResult) string {
	byRegion := make(map[string]models.RegionResult, len(results))
	for _, result := range results {
		byRegion[result.Region] = result
	}

	var lines []string
	for _, bucket := range Buckets() {
		lines = append(lines,
			ruleHeavy,
			bucket.Title,
			ruleHeavy,
			columnTitle,
			ruleLight,
			bucketBody(bucket, regions, byRegion),
		)
	}

	if failed := failedRegionLines(regions, byRegion); len(failed) > 0 {
		lines = append(lines, ruleHeavy, FailedRegionsTitle, ruleHeavy)
		lines = append(lines, failed...)
	}

	return strings.Join(lines, "\n")
}

// bucketBody returns one block per region with qualifying instances
func bucketBody(bucket Bucket, regions []string, byRegion map[string]models.RegionResult) string {
	var blocks []string
	for _, region := range regions {
		result, ok := byRegion[region]
		if !ok || result.Failed() {
			continue
		}

		var regionLines []string
		for _, summary := range result.Summaries {
			if !summary.HasImage || !bucket.Contains(summary.MinAgeDays) {
				continue
			}
			if line, ok := FormatLine(region, summary); ok {
				regionLines = append(regionLines, line)
			}
		}

		if len(regionLines) > 0 {
			blocks = append(blocks, strings.Join(regionLines, "\n"))
		}
	}
	return strings.Join(blocks, "\n")
}

// FormatLine renders one report line for an instance with an image
func FormatLine(region string, summary models.InstanceSummary) (string, bool) {
	image, ok := summary.LatestImage()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s %s\t%d day(s) old\t%s", region, summary.InstanceID, image.DaysOld, image.ImageID), true
}

func failedRegionLines(regions []string, byRegion map[string]models.RegionResult) []string {
	var lines []string
	for _, region := range regions {
		result, ok := byRegion[region]
		if !ok {
			lines = append(lines, fmt.Sprintf("%s: no result", region))
			continue
		}
		if result.Failed() {
			lines = append(lines, fmt.Sprintf("%s: %v", region, result.Err))
		}
	}
	return lines
}

// HTMLBody converts the text report into the HTML mail body
func HTMLBody(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}
