package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSAPI is the subset of the STS API used to identify the account
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// IMDSAPI is the subset of the instance metadata client used to find the local region
type IMDSAPI interface {
	GetRegion(ctx context.Context, params *imds.GetRegionInput, optFns ...func(*imds.Options)) (*imds.GetRegionOutput, error)
}

// GetAccountID returns the account the credentials belong to
func GetAccountID(ctx context.Context, api STSAPI) (string, error) {
	result, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting caller identity: %w", err)
	}
	return aws.ToString(result.Account), nil
}

// NewSTSClient creates an STS client from cfg
func NewSTSClient(cfg aws.Config) *sts.Client {
	return sts.NewFromConfig(cfg)
}

// DetectRegion asks the instance metadata service for the region the process runs in
func DetectRegion(ctx context.Context, api IMDSAPI) (string, error) {
	result, err := api.GetRegion(ctx, &imds.GetRegionInput{})
	if err != nil {
		return "", fmt.Errorf("error reading region from instance metadata: %w", err)
	}
	return result.Region, nil
}

// NewIMDSClient creates an instance metadata client
func NewIMDSClient() *imds.Client {
	return imds.New(imds.Options{})
}
