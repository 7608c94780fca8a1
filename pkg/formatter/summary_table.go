package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/utils"
)

var heading = color.New(color.FgCyan, color.Bold).SprintFunc()

type tableRow struct {
	region  string
	summary models.InstanceSummary
	image   models.ImageAge
}

// PrintSummaryTable prints every instance that resolved to an image, newest image first
func PrintSummaryTable(w io.Writer, results []models.RegionResult, now time.Time) {
	var rows []tableRow
	for _, result := range results {
		if result.Failed() {
			continue
		}
		for _, summary := range result.Summaries {
			if image, ok := summary.LatestImage(); ok {
				rows = append(rows, tableRow{region: result.Region, summary: summary, image: image})
			}
		}
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No instances with images found.")
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].summary.MinAgeDays < rows[j].summary.MinAgeDays
	})

	// kubectl style tabwriter
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tLOCATION\tINSTANCE ID\tNAME\tIMAGE ID\tDAYS\tCREATED")

	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			row.region,
			utils.GetRegionDescriptiveName(row.region),
			row.summary.InstanceID,
			getInstanceName(row.summary.Name),
			row.image.ImageID,
			row.image.DaysOld,
			humanize.RelTime(row.image.CreationDate, now, "ago", "from now"),
		)
	}

	fmt.Fprintf(tw, "Total:\t%d\t\t\t\t\t\n", len(rows))
	tw.Flush()
}

// PrintBucketSummary prints instance counts per age bucket and per region outcome
func PrintBucketSummary(w io.Writer, results []models.RegionResult) {
	counts := map[string]int{}
	keys := []string{}
	for _, bucket := range Buckets() {
		keys = append(keys, bucket.Title)
	}
	const (
		tooOld  = "Older than 99 days"
		noImage = "No image"
	)
	keys = append(keys, tooOld, noImage)

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
			continue
		}
		for _, summary := range result.Summaries {
			if !summary.HasImage {
				counts[noImage]++
				continue
			}
			placed := false
			for _, bucket := range Buckets() {
				if bucket.Contains(summary.MinAgeDays) {
					counts[bucket.Title]++
					placed = true
					break
				}
			}
			if !placed && summary.MinAgeDays > OldMaxDays {
				counts[tooOld]++
			}
		}
	}

	fmt.Fprintln(w, heading("\n## AMI Age Summary"))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "AGE\tINSTANCE COUNT")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%d\n", key, counts[key])
	}
	fmt.Fprintf(tw, "Regions failed\t%d\n", failed)
	tw.Flush()
}
