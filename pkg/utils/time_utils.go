package utils

import (
	"math"
	"time"
)

// Day is the length of one age unit
const Day = 24 * time.Hour

// DaysBetween returns the whole days elapsed from since to now, rounded down.
// Times after now give negative values.
func DaysBetween(since, now time.Time) int {
	return int(math.Floor(float64(now.Sub(since)) / float64(Day)))
}

// ParseImageCreationDate parses the ISO 8601 CreationDate returned by DescribeImages
func ParseImageCreationDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
