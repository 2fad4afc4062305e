package config

// Defaults applied when neither an override nor an environment variable
// provides the field.
const (
	DefaultMaxRetries = 3
	DefaultTimeout    = 30
)

// Config holds every setting the S3 connector needs. BucketName and
// Directory are required. Credentials and Profile are optional; when all
// are empty the AWS default credential chain applies. Timeout is in
// seconds.
type Config struct {
	BucketName      string `json:"bucket_name"`
	Directory       string `json:"directory"`
	Region          string `json:"region,omitempty"`
	AccessKeyID     string `json:"access_key_id,omitempty"`
	SecretAccessKey string `json:"secret_access_key,omitempty"`
	SessionToken    string `json:"session_token,omitempty"`
	Profile         string `json:"profile,omitempty"`
	MaxRetries      int    `json:"max_retries"`
	Timeout         int    `json:"timeout"`
}

// Option overrides a single field during Resolve.
type Option func(*Config)

// WithBucketName overrides the bucket name.
func WithBucketName(name string) Option {
	return func(c *Config) { c.BucketName = name }
}

// WithDirectory overrides the directory prefix.
func WithDirectory(dir string) Option {
	return func(c *Config) { c.Directory = dir }
}

// WithRegion overrides the AWS region.
func WithRegion(region string) Option {
	return func(c *Config) { c.Region = region }
}

// WithCredentials overrides the static credentials. The session token may
// be empty for long-lived keys.
func WithCredentials(accessKeyID, secretAccessKey, sessionToken string) Option {
	return func(c *Config) {
		c.AccessKeyID = accessKeyID
		c.SecretAccessKey = secretAccessKey
		c.SessionToken = sessionToken
	}
}

// WithProfile overrides the shared-config profile name.
func WithProfile(profile string) Option {
	return func(c *Config) { c.Profile = profile }
}

// WithMaxRetries overrides the retry count.
func WithMaxRetries(n int) Option {
	return func(c *Config) { c.MaxRetries = n }
}

// WithTimeout overrides the request timeout in seconds.
func WithTimeout(seconds int) Option {
	return func(c *Config) { c.Timeout = seconds }
}

// Resolve builds the effective configuration. A non-nil explicit config is
// used verbatim and opts are ignored. Otherwise each field takes the
// override when one is given, else the environment value from get, else
// the built-in default. The result is always validated.
func Resolve(explicit *Config, get Lookup, opts ...Option) (Config, error) {
	if explicit != nil {
		cfg := *explicit
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}

	cfg, err := FromLookup(get)
	if err != nil {
		return Config{}, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
