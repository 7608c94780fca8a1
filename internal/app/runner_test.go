package app_test

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/younsl/amireport/internal/app"
	"github.com/younsl/amireport/internal/config"
	"github.com/younsl/amireport/internal/logging"
	"github.com/younsl/amireport/internal/models"
	awsclient "github.com/younsl/amireport/pkg/aws"
	"github.com/younsl/amireport/pkg/formatter"
	"github.com/younsl/amireport/pkg/inventory"
	"github.com/younsl/amireport/pkg/inventory/inventoryfakes"
	"github.com/younsl/amireport/pkg/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeRegions struct {
	regions []string
	err     error
	calls   int
}

func (f *fakeRegions) ListRegions(context.Context) ([]string, error) {
	f.calls++
	return f.regions, f.err
}

type fakeMailer struct {
	sent []awsclient.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg awsclient.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

type fakeProgress struct {
	started, stopped int
}

func (f *fakeProgress) Start(string) { f.started++ }
func (f *fakeProgress) Stop(string)  { f.stopped++ }

var _ = Describe("Runner", func() {
	var (
		ctx     context.Context
		now     time.Time
		regions *fakeRegions
		mailer  *fakeMailer
		listers map[string]*inventoryfakes.FakeLister
		runner  *app.Runner
	)

	lister := func(instanceID string, age int) *inventoryfakes.FakeLister {
		l := &inventoryfakes.FakeLister{}
		l.ListInstancesReturns([]models.Instance{{InstanceID: instanceID, VolumeID: "vol-" + instanceID}}, nil)
		l.ListSnapshotsReturns([]models.Snapshot{{SnapshotID: "snap-" + instanceID, VolumeID: "vol-" + instanceID}}, nil)
		l.ListImagesReturns([]models.Image{{
			ImageID:      "ami-" + instanceID,
			SnapshotID:   "snap-" + instanceID,
			CreationDate: now.Add(-time.Duration(age) * utils.Day),
		}}, nil)
		return l
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		regions = &fakeRegions{regions: []string{"us-east-1", "eu-west-1"}}
		mailer = &fakeMailer{}
		listers = map[string]*inventoryfakes.FakeLister{
			"us-east-1": lister("i-1", 5),
			"eu-west-1": lister("i-2", 45),
		}

		factory := func(_ context.Context, region string) (inventory.Lister, error) {
			if l, ok := listers[region]; ok {
				return l, nil
			}
			return nil, errors.New("unknown region " + region)
		}

		clock := func() time.Time { return now }
		runner = &app.Runner{
			Config: config.Config{
				FromAddress:   "reports@example.com",
				ToAddress:     "ops@example.com",
				Subject:       config.DefaultSubject,
				RegionTimeout: time.Second,
			},
			Regions: regions,
			Collector: inventory.NewCollector(factory, logging.Discard(), inventory.Options{
				RegionTimeout: time.Second,
				Clock:         clock,
			}),
			Mailer: mailer,
			Log:    logging.Discard(),
			RunID:  "run-1",
			Clock:  clock,
		}
	})

	It("collects every enabled region and mails the report", func() {
		outcome, err := runner.Run(ctx)
		Expect(err).ToNot(HaveOccurred())

		Expect(regions.calls).To(Equal(1))
		Expect(outcome.Regions).To(Equal([]string{"us-east-1", "eu-west-1"}))
		Expect(outcome.MessageID).To(Equal("msg-1"))
		Expect(outcome.FailedRegions()).To(BeEmpty())

		Expect(mailer.sent).To(HaveLen(1))
		msg := mailer.sent[0]
		Expect(msg.From).To(Equal("reports@example.com"))
		Expect(msg.To).To(Equal("ops@example.com"))
		Expect(msg.Subject).To(Equal(config.DefaultSubject))
		Expect(msg.Text).To(Equal(outcome.Report))
		Expect(msg.HTML).To(Equal(formatter.HTMLBody(outcome.Report)))
		Expect(msg.RunID).To(Equal("run-1"))
		Expect(msg.Text).To(ContainSubstring("us-east-1 i-1\t5 day(s) old\tami-i-1"))
		Expect(msg.Text).To(ContainSubstring("eu-west-1 i-2\t45 day(s) old\tami-i-2"))
	})

	It("uses the configured regions instead of listing them", func() {
		runner.Config.Regions = []string{"eu-west-1"}

		outcome, err := runner.Run(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(regions.calls).To(Equal(0))
		Expect(outcome.Regions).To(Equal([]string{"eu-west-1"}))
		Expect(listers["us-east-1"].ListInstancesCallCount()).To(Equal(0))
	})

	It("still sends the report when a region fails", func() {
		regions.regions = []string{"us-east-1", "ap-south-1"}

		outcome, err := runner.Run(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(outcome.FailedRegions()).To(Equal([]string{"ap-south-1"}))
		Expect(mailer.sent).To(HaveLen(1))
		Expect(mailer.sent[0].Text).To(ContainSubstring(formatter.FailedRegionsTitle))
		Expect(mailer.sent[0].Text).To(ContainSubstring("unknown region ap-south-1"))
	})

	It("fails when regions cannot be listed", func() {
		regions.err = errors.New("denied")

		_, err := runner.Run(ctx)
		Expect(err).To(MatchError(ContainSubstring("error listing regions")))
		Expect(mailer.sent).To(BeEmpty())
	})

	It("does not mail an empty report when there are no regions", func() {
		regions.regions = []string{}

		outcome, err := runner.Run(ctx)
		Expect(err).To(MatchError(inventory.ErrNoRegions))
		Expect(outcome.Report).To(BeEmpty())
		Expect(mailer.sent).To(BeEmpty())
	})

	It("returns delivery errors", func() {
		mailer.err = errors.New("MessageRejected")

		outcome, err := runner.Run(ctx)
		Expect(err).To(MatchError("MessageRejected"))
		Expect(outcome.Report).ToNot(BeEmpty())
		Expect(outcome.MessageID).To(BeEmpty())
	})

	It("prints instead of mailing in dry-run mode", func() {
		out := &bytes.Buffer{}
		progress := &fakeProgress{}
		runner.DryRun = true
		runner.Out = out
		runner.Progress = progress

		outcome, err := runner.Run(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(mailer.sent).To(BeEmpty())
		Expect(progress.started).To(Equal(1))
		Expect(progress.stopped).To(Equal(1))

		Expect(out.String()).To(ContainSubstring(outcome.Report))
		Expect(out.String()).To(ContainSubstring("INSTANCE ID"))
		Expect(out.String()).To(ContainSubstring("## AMI Age Summary"))
		Expect(out.String()).To(ContainSubstring("Scan completed at"))
	})
})
