package models

// Instance represents an EC2 instance and its boot volume
type Instance struct {
	InstanceID     string
	Name           string
	VolumeID       string // empty when no block device matches the root device
	RootDeviceName string
}

// TagFilter selects instances carrying the tag Key=Value.
// An empty Key disables filtering.
type TagFilter struct {
	Key   string
	Value string
}
