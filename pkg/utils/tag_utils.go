package utils

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/amireport/internal/models"
)

// GetTagValue returns the value of a tag with the given key
func GetTagValue(tags []types.Tag, key string) string {
	for _, tag := range tags {
		if tag.Key != nil && *tag.Key == key {
			if tag.Value != nil {
				return *tag.Value
			}
			return ""
		}
	}
	return ""
}

// GetName returns the value of the Name tag
func GetName(tags []types.Tag) string {
	return GetTagValue(tags, "Name")
}

// TagFilters converts a tag filter into DescribeInstances filters.
// An empty key yields no filters.
func TagFilters(f models.TagFilter) []types.Filter {
	if f.Key == "" {
		return nil
	}
	return []types.Filter{{
		Name:   aws.String("tag:" + f.Key),
		Values: []string{f.Value},
	}}
}
