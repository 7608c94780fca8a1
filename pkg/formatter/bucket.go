package formatter

// Age bucket bounds in days, inclusive
const (
	YoungMinDays = 0
	YoungMaxDays = 30
	OldMinDays   = 31
	OldMaxDays   = 99
)

// Bucket is a fixed day interval of the report
type Bucket struct {
	Title   string
	MinDays int
	MaxDays int
}

// Contains reports whether days falls inside the bucket
func (b Bucket) Contains(days int) bool {
	return days >= b.MinDays && days <= b.MaxDays
}

var (
	// YoungBucket holds instances whose newest image is at most 30 days old
	YoungBucket = Bucket{
		Title:   "AMI's which are less than 30 days old",
		MinDays: YoungMinDays,
		MaxDays: YoungMaxDays,
	}

	// OldBucket holds instances whose newest image is 31 to 99 days old.
	// Anything older is left out of the report.
	OldBucket = Bucket{
		Title:   "AMI's which are greater than 30 days old",
		MinDays: OldMinDays,
		MaxDays: OldMaxDays,
	}
)

// Buckets lists the report buckets in output order
func Buckets() []Bucket {
	return []Bucket{YoungBucket, OldBucket}
}
