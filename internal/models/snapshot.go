package models

import "time"

// Snapshot represents an EBS snapshot taken from a volume
type Snapshot struct {
	SnapshotID  string
	VolumeID    string
	StartTime   time.Time
	Description string
}
