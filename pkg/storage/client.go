package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jmfelice/aws-s3/pkg/config"
)

// NewClient builds an S3 client from the resolved configuration. Static
// credentials win over a named profile, which wins over the AWS default
// credential chain. No network request is made here; the first call on
// the returned client performs one.
func NewClient(ctx context.Context, cfg config.Config) (*s3.Client, error) {
	loadOpts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRetryer(func() aws.Retryer {
			// MaxAttempts counts the initial request, MaxRetries does not.
			return retry.AddWithMaxAttempts(retry.NewStandard(), cfg.MaxRetries+1)
		}),
		awsConfig.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		}),
	}

	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsConfig.WithRegion(cfg.Region))
	}

	switch {
	case cfg.AccessKeyID != "" && cfg.SecretAccessKey != "":
		loadOpts = append(loadOpts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				cfg.SessionToken,
			),
		))
	case cfg.Profile != "":
		loadOpts = append(loadOpts, awsConfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading aws config: %w", ErrCredential, err)
	}

	return s3.NewFromConfig(awsCfg), nil
}
