package formatter

import (
	"fmt"
	"io"
	"time"
)

// PrintTimestamp prints the scan timestamp and duration
func PrintTimestamp(w io.Writer, scanStartTime time.Time, scanDuration time.Duration) {
	timeStr := scanStartTime.Format("2006-01-02 15:04:05")
	durationStr := fmt.Sprintf("%.2fs", scanDuration.Seconds())

	fmt.Fprintf(w, "Scan completed at %s (took %s)\n", timeStr, durationStr)
}

// getInstanceName returns a formatted instance name or <unnamed> if empty
func getInstanceName(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}
