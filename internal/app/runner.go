// Package app runs one report: resolve regions, collect every region,
// render the report and deliver it.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/younsl/amireport/internal/config"
	"github.com/younsl/amireport/internal/models"
	awsclient "github.com/younsl/amireport/pkg/aws"
	"github.com/younsl/amireport/pkg/formatter"
	"github.com/younsl/amireport/pkg/inventory"
)

// RegionLister enumerates the regions to report on
type RegionLister interface {
	ListRegions(ctx context.Context) ([]string, error)
}

// Collector gathers one result per region
type Collector interface {
	CollectAll(ctx context.Context, regions []string) ([]models.RegionResult, error)
}

// Mailer delivers the rendered report
type Mailer interface {
	Send(ctx context.Context, msg awsclient.Message) (string, error)
}

// Progress reports collection progress to an interactive user
type Progress interface {
	Start(message string)
	Stop(final string)
}

// Runner holds the collaborators of a report run
type Runner struct {
	Config    config.Config
	Regions   RegionLister
	Collector Collector
	Mailer    Mailer
	Log       log15.Logger

	// RunID tags the delivered mail; see logging.WithRunID
	RunID string

	// Out receives the report and tables in dry-run mode
	Out    io.Writer
	DryRun bool

	// Progress is optional
	Progress Progress

	// Clock defaults to time.Now
	Clock func() time.Time
}

// Outcome describes a finished run
type Outcome struct {
	Regions   []string
	Results   []models.RegionResult
	Report    string
	MessageID string
}

// FailedRegions returns the regions that could not be collected
func (o Outcome) FailedRegions() []string {
	var failed []string
	for _, result := range o.Results {
		if result.Failed() {
			failed = append(failed, result.Region)
		}
	}
	return failed
}

// Run executes the report. Region failures are logged and reported in the
// email; only region enumeration, an empty region list and delivery errors
// are returned.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()

	regions, err := r.resolveRegions(ctx)
	if err != nil {
		return Outcome{}, err
	}
	r.Log.Info("processing regions", "count", len(regions), "filter_key", r.Config.Filter.Key)

	if r.Progress != nil {
		r.Progress.Start(fmt.Sprintf(" Analyzing AMIs in %d regions ...", len(regions)))
	}
	results, err := r.Collector.CollectAll(ctx, regions)
	if r.Progress != nil {
		r.Progress.Stop(fmt.Sprintf("✓ [%d regions] AMI inventory collected - Completed in %.2f seconds\n",
			len(regions), clock().Sub(start).Seconds()))
	}
	if errors.Is(err, inventory.ErrNoRegions) {
		r.Log.Error("nothing to report", "err", err)
		return Outcome{Regions: regions}, err
	}
	if err != nil {
		r.Log.Warn("some regions could not be collected", "err", err)
	}

	outcome := Outcome{
		Regions: regions,
		Results: results,
		Report:  formatter.BuildReport(regions, results),
	}
	r.Log.Debug("report built", "report", outcome.Report)

	if r.DryRun {
		r.printReport(outcome, start, clock)
		return outcome, nil
	}

	id, err := r.Mailer.Send(ctx, awsclient.Message{
		From:    r.Config.FromAddress,
		To:      r.Config.ToAddress,
		Subject: r.Config.Subject,
		Text:    outcome.Report,
		HTML:    formatter.HTMLBody(outcome.Report),
		RunID:   r.RunID,
	})
	if err != nil {
		r.Log.Error("mail not sent", "to", r.Config.ToAddress, "err", err)
		return outcome, err
	}
	outcome.MessageID = id
	r.Log.Info("mail sent", "message_id", id, "to", r.Config.ToAddress)

	return outcome, nil
}

func (r *Runner) resolveRegions(ctx context.Context) ([]string, error) {
	if len(r.Config.Regions) > 0 {
		return r.Config.Regions, nil
	}
	regions, err := r.Regions.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing regions: %w", err)
	}
	return regions, nil
}

func (r *Runner) printReport(outcome Outcome, start time.Time, clock func() time.Time) {
	if r.Out == nil {
		return
	}
	fmt.Fprintln(r.Out, outcome.Report)
	fmt.Fprintln(r.Out)
	formatter.PrintSummaryTable(r.Out, outcome.Results, start)
	formatter.PrintBucketSummary(r.Out, outcome.Results)
	formatter.PrintTimestamp(r.Out, start, clock().Sub(start))
}
