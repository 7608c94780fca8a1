// Package inventory collects the instances, snapshots and images of each
// region and correlates them into per-instance summaries.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/younsl/amireport/internal/models"
	"github.com/younsl/amireport/pkg/correlate"
)

// DefaultRegionTimeout bounds a single region's collection
const DefaultRegionTimeout = 2 * time.Minute

// Collection stages, reported in RegionError.Stage
const (
	StageConnect   = "connect"
	StageInstances = "list instances"
	StageSnapshots = "list snapshots"
	StageImages    = "list images"
	StageCollect   = "collect"
)

// Options configures a Collector
type Options struct {
	// Filter selects the instances to report on
	Filter models.TagFilter

	// RegionTimeout bounds each region. Zero means DefaultRegionTimeout.
	RegionTimeout time.Duration

	// Clock returns the reference time for image ages. Defaults to time.Now.
	Clock func() time.Time
}

// Collector runs the per-region inventory flow
type Collector struct {
	newLister ListerFactory
	filter    models.TagFilter
	timeout   time.Duration
	clock     func() time.Time
	log       log15.Logger
}

// NewCollector returns a Collector creating its listers with newLister
func NewCollector(newLister ListerFactory, logger log15.Logger, opts Options) *Collector {
	if opts.RegionTimeout <= 0 {
		opts.RegionTimeout = DefaultRegionTimeout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Collector{
		newLister: newLister,
		filter:    opts.Filter,
		timeout:   opts.RegionTimeout,
		clock:     opts.Clock,
		log:       logger,
	}
}

// CollectAll collects every region concurrently and returns one result per
// region, in input order. It returns once every region has either finished
// or hit its timeout. The error aggregates the failed regions; the results
// are still usable when it is non-nil.
func (c *Collector) CollectAll(ctx context.Context, regions []string) ([]models.RegionResult, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}

	now := c.clock()
	results := make([]models.RegionResult, len(regions))
	errs := &ErrorCollection{}

	var wg sync.WaitGroup
	for i, region := range regions {
		wg.Add(1)
		go func(idx int, r string) {
			defer wg.Done()

			results[idx] = c.collectRegion(ctx, r, now)
			errs.Add(results[idx].Err)
		}(i, region)
	}

	wg.Wait()

	c.log.Info("collected regions", "regions", len(regions), "failed", errs.Len())
	return results, errs.Err()
}

// CollectRegion collects a single region
func (c *Collector) CollectRegion(ctx context.Context, region string) models.RegionResult {
	return c.collectRegion(ctx, region, c.clock())
}

func (c *Collector) collectRegion(ctx context.Context, region string, now time.Time) models.RegionResult {
	logger := c.log.New("region", region)
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	done := make(chan models.RegionResult, 1)
	go func() {
		done <- c.gather(ctx, logger, region, now)
	}()

	var result models.RegionResult
	select {
	case result = <-done:
		if result.Err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.Err = &RegionError{
				Region: region,
				Stage:  stageOf(result.Err),
				Err:    fmt.Errorf("%w: %w", ErrRegionTimeout, errors.Unwrap(result.Err)),
			}
		}
	case <-ctx.Done():
		// The lister did not honour cancellation; abandon it.
		result = models.RegionResult{
			Region: region,
			Err:    &RegionError{Region: region, Stage: StageCollect, Err: contextErr(ctx)},
		}
	}
	result.Duration = time.Since(start)

	if result.Err != nil {
		logger.Error("region collection failed", "err", result.Err, "duration", result.Duration)
	} else {
		logger.Info("region collected",
			"instances", result.Instances,
			"snapshots", result.Snapshots,
			"images", result.Images,
			"with_image", len(correlate.WithImages(result.Summaries)),
			"duration", result.Duration,
		)
	}
	return result
}

func (c *Collector) gather(ctx context.Context, logger log15.Logger, region string, now time.Time) models.RegionResult {
	result := models.RegionResult{Region: region}
	fail := func(stage string, err error) models.RegionResult {
		result.Err = &RegionError{Region: region, Stage: stage, Err: err}
		return result
	}

	logger.Debug("extracting data for region")

	lister, err := c.newLister(ctx, region)
	if err != nil {
		return fail(StageConnect, err)
	}

	instances, err := lister.ListInstances(ctx, c.filter)
	if err != nil {
		return fail(StageInstances, err)
	}
	result.Instances = len(instances)

	volumeIDs := make([]string, 0, len(instances))
	for _, inst := range instances {
		if inst.VolumeID != "" {
			volumeIDs = append(volumeIDs, inst.VolumeID)
		}
	}
	logger.Debug("listed instances", "instances", len(instances), "volumes", len(volumeIDs))

	snapshots := []models.Snapshot{}
	if len(volumeIDs) > 0 {
		snapshots, err = lister.ListSnapshots(ctx, volumeIDs)
		if err != nil {
			return fail(StageSnapshots, err)
		}
	}
	result.Snapshots = len(snapshots)

	images, err := lister.ListImages(ctx)
	if err != nil {
		return fail(StageImages, err)
	}
	result.Images = len(images)

	result.Summaries = correlate.Correlate(instances, snapshots, images, now)
	return result
}

func stageOf(err error) string {
	var regionErr *RegionError
	if errors.As(err, &regionErr) {
		return regionErr.Stage
	}
	return StageCollect
}

func contextErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrRegionTimeout
	}
	return ctx.Err()
}
