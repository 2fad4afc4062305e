// Package connector provides a small facade over AWS S3 scoped to one
// bucket and one directory prefix: upload local files (sequentially or
// in parallel), list keys and delete objects in bulk. Configuration
// comes from an explicit record, the environment or per-field
// overrides, in that order of precedence.
package connector

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/jmfelice/aws-s3/pkg/config"
	"github.com/jmfelice/aws-s3/pkg/storage"
)

// Connector is the facade handle. Constructing one validates both the
// configuration and the connection; a returned Connector is ready to
// use and safe for concurrent use.
type Connector struct {
	cfg      config.Config
	client   storage.S3API
	uploader storage.UploadManager
	log      zerolog.Logger
}

type settings struct {
	explicit *config.Config
	cfgOpts  []config.Option
	lookup   config.Lookup
	logger   zerolog.Logger
	client   storage.S3API
	uploader storage.UploadManager
}

// Option adjusts how New assembles the connector.
type Option func(*settings)

// WithConfig supplies a complete configuration. Environment resolution
// and field overrides are skipped; the record is still validated.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) { s.explicit = &cfg }
}

// WithBucketName overrides the bucket name.
func WithBucketName(name string) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithBucketName(name)) }
}

// WithDirectory overrides the directory prefix.
func WithDirectory(dir string) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithDirectory(dir)) }
}

// WithRegion overrides the AWS region.
func WithRegion(region string) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithRegion(region)) }
}

// WithCredentials overrides the static credentials.
func WithCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(s *settings) {
		s.cfgOpts = append(s.cfgOpts, config.WithCredentials(accessKeyID, secretAccessKey, sessionToken))
	}
}

// WithProfile overrides the shared-config profile name.
func WithProfile(profile string) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithProfile(profile)) }
}

// WithMaxRetries overrides the retry count.
func WithMaxRetries(n int) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithMaxRetries(n)) }
}

// WithTimeout overrides the request timeout in seconds.
func WithTimeout(seconds int) Option {
	return func(s *settings) { s.cfgOpts = append(s.cfgOpts, config.WithTimeout(seconds)) }
}

// WithEnv replaces the environment lookup used during resolution.
func WithEnv(get config.Lookup) Option {
	return func(s *settings) { s.lookup = get }
}

// WithLogger attaches a logger. The connector is silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.logger = log }
}

// WithStorage injects both storage capabilities directly, bypassing the
// AWS client factory. Meant for tests and custom endpoints; the
// connection probe still runs against the injected client.
func WithStorage(client storage.S3API, uploader storage.UploadManager) Option {
	return func(s *settings) {
		s.client = client
		s.uploader = uploader
	}
}

// New resolves the configuration, builds the S3 client and validates
// the connection with a HeadBucket probe. Any failure aborts
// construction; no partially initialized Connector is ever returned.
func New(ctx context.Context, opts ...Option) (*Connector, error) {
	s := settings{
		lookup: os.Getenv,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	cfg, err := config.Resolve(s.explicit, s.lookup, s.cfgOpts...)
	if err != nil {
		return nil, err
	}

	client, uploader := s.client, s.uploader
	if client == nil {
		raw, err := storage.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client = raw
		uploader = manager.NewUploader(raw)
	}

	c := &Connector{
		cfg:      cfg,
		client:   client,
		uploader: uploader,
		log:      s.logger,
	}

	if err := c.validateConnection(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// validateConnection probes the bucket with a lightweight request.
func (c *Connector) validateConnection(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.cfg.BucketName),
	})
	if err != nil {
		c.log.Error().Err(err).Str("bucket", c.cfg.BucketName).Msg("s3 connection failed")
		return fmt.Errorf("%w: s3 credentials are invalid or expired, refresh your SSO session: %w",
			storage.ErrAuthFailed, err)
	}

	c.log.Info().Str("bucket", c.cfg.BucketName).Msg("s3 connection successful")
	return nil
}

// Config returns a copy of the resolved configuration.
func (c *Connector) Config() config.Config {
	return c.cfg
}
