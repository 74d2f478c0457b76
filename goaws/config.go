// package goaws contains methods for initializing AWS SDK configurations
// for use with each service client. SDK v2 configs back the sesv2, S3, SNS
// and SQS clients; SDK v1 sessions back the classic SES client. Also contains
// generic error types for implementing service-specific errors and common
// logic across services.
package goaws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type AwsConfig struct {
	Config aws.Config
}

// Region returns the region the config resolved to.
func (c *AwsConfig) Region() string {
	if c == nil {
		return ""
	}
	return c.Config.Region
}

func NewDefaultConfig(ctx context.Context) (*AwsConfig, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}

// NewConfigWithRegion loads the default credential chain and pins the
// region. SES is only offered in a subset of regions, so callers usually
// set it explicitly.
func NewConfigWithRegion(ctx context.Context, region string) (*AwsConfig, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}

func NewConfigWithProfile(ctx context.Context, profile string) (*AwsConfig, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithSharedConfigProfile(profile),
	)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}

func NewConfigFromEnv(
	ctx context.Context,
	accessKeyId,
	secretKey,
	stsToken string,
) (*AwsConfig, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyId, secretKey, stsToken,
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("config.LoadDefaultConfig: %w", err)
	}

	return &AwsConfig{Config: cfg}, nil
}
