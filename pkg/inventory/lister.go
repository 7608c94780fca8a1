package inventory

import (
	"context"

	"github.com/younsl/amireport/internal/models"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Lister
type Lister interface {
	ListInstances(ctx context.Context, filter models.TagFilter) ([]models.Instance, error)
	ListSnapshots(ctx context.Context, volumeIDs []string) ([]models.Snapshot, error)
	ListImages(ctx context.Context) ([]models.Image, error)
}

// ListerFactory returns a Lister bound to region
type ListerFactory func(ctx context.Context, region string) (Lister, error)
