package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadConfig loads the default SDK configuration for a region.
// profile selects a shared config profile and may be empty.
func LoadConfig(ctx context.Context, region, profile string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error loading AWS config for region %s: %w", region, err)
	}
	return cfg, nil
}

// ForRegion returns a copy of cfg pointed at region
func ForRegion(cfg aws.Config, region string) aws.Config {
	regional := cfg.Copy()
	regional.Region = region
	return regional
}
