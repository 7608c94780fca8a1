package formatter_test

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/formatter"
	"github.com/younsl/amireport/pkg/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrintSummaryTable", func() {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	It("lists instances with images newest first", func() {
		old := summary("i-old", "ami-old", 40)
		old.Images[0].CreationDate = now.Add(-40 * utils.Day)
		old.Name = "batch"
		young := summary("i-young", "ami-young", 3)
		young.Images[0].CreationDate = now.Add(-3 * utils.Day)

		buf := &bytes.Buffer{}
		formatter.PrintSummaryTable(buf, []models.RegionResult{
			{Region: "us-east-1", Summaries: []models.InstanceSummary{old, young, noImage("i-none")}},
			{Region: "eu-west-1", Err: errors.New("boom")},
		}, now)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[0]).To(HavePrefix("REGION"))
		Expect(lines[1]).To(ContainSubstring("i-young"))
		Expect(lines[1]).To(ContainSubstring("<unnamed>"))
		Expect(lines[1]).To(ContainSubstring("3 days ago"))
		Expect(lines[2]).To(ContainSubstring("i-old"))
		Expect(lines[2]).To(ContainSubstring("batch"))
		Expect(lines[3]).To(HavePrefix("Total:"))
		Expect(buf.String()).ToNot(ContainSubstring("i-none"))
	})

	It("says so when nothing resolved to an image", func() {
		buf := &bytes.Buffer{}
		formatter.PrintSummaryTable(buf, nil, now)
		Expect(buf.String()).To(Equal("No instances with images found.\n"))
	})
})

var _ = Describe("PrintBucketSummary", func() {
	It("counts instances per bucket", func() {
		buf := &bytes.Buffer{}
		formatter.PrintBucketSummary(buf, []models.RegionResult{
			{Region: "us-east-1", Summaries: []models.InstanceSummary{
				summary("i-1", "ami-1", 1),
				summary("i-2", "ami-2", 2),
				summary("i-3", "ami-3", 50),
				summary("i-4", "ami-4", 150),
				noImage("i-5"),
			}},
			{Region: "eu-west-1", Err: errors.New("boom")},
		})

		out := buf.String()
		Expect(out).To(ContainSubstring("## AMI Age Summary"))
		Expect(out).To(MatchRegexp(`AMI's which are less than 30 days old\s+2`))
		Expect(out).To(MatchRegexp(`AMI's which are greater than 30 days old\s+1`))
		Expect(out).To(MatchRegexp(`Older than 99 days\s+1`))
		Expect(out).To(MatchRegexp(`No image\s+1`))
		Expect(out).To(MatchRegexp(`Regions failed\s+1`))
	})
})

var _ = Describe("PrintTimestamp", func() {
	It("prints the scan time and duration", func() {
		buf := &bytes.Buffer{}
		formatter.PrintTimestamp(buf, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), 1500*time.Millisecond)
		Expect(buf.String()).To(Equal("Scan completed at 2024-06-15 12:00:00 (took 1.50s)\n"))
	})
})
