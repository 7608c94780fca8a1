package models

import "time"

// InstanceSummary is an instance joined to the images built from its boot volume
type InstanceSummary struct {
	Instance

	// Images holds at most one entry: the most recently created image
	Images   []ImageAge
	HasImage bool

	// MinAgeDays is the age of the newest image, valid only when HasImage is set
	MinAgeDays int
}

// LatestImage returns the image selected for the summary
func (s InstanceSummary) LatestImage() (ImageAge, bool) {
	if !s.HasImage || len(s.Images) == 0 {
		return ImageAge{}, false
	}
	return s.Images[len(s.Images)-1], true
}

// RegionResult is the outcome of collecting one region.
// Err is set when the region could not be collected.
type RegionResult struct {
	Region    string
	Summaries []InstanceSummary
	Err       error

	// Collection counters
	Instances int
	Snapshots int
	Images    int
	Duration  time.Duration
}

// Failed reports whether the region could not be collected
func (r RegionResult) Failed() bool {
	return r.Err != nil
}
