package models

import "time"

// Image represents an AMI owned by the account.
// SnapshotID is the snapshot of the image's first block device mapping.
type Image struct {
	ImageID      string
	SnapshotID   string
	CreationDate time.Time
	Name         string
	Description  string
	Public       bool
}

// ImageAge is an image reachable from an instance together with its age
type ImageAge struct {
	ImageID      string
	CreationDate time.Time
	DaysOld      int
}
