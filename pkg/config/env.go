package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvBucketName      = "S3_BUCKET_NAME"
	EnvDirectory       = "S3_DIRECTORY"
	EnvRegion          = "AWS_REGION"
	EnvMaxRetries      = "AWS_MAX_RETRIES"
	EnvTimeout         = "AWS_TIMEOUT"
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvProfile         = "AWS_PROFILE"
)

// Lookup reads one environment variable. An empty return means unset.
type Lookup func(key string) string

// FromEnv resolves configuration from the process environment.
func FromEnv() (Config, error) {
	return FromLookup(os.Getenv)
}

// FromEnvFile loads a dotenv file into the process environment and then
// resolves from it. Variables from the file win over ones already set.
// A missing file is not an error.
func FromEnvFile(path string) (Config, error) {
	if err := godotenv.Overload(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: loading %s: %v", ErrInvalidConfig, path, err)
	}
	return FromEnv()
}

// FromLookup resolves configuration from an arbitrary key-value lookup.
// Unset integer fields take their defaults; malformed ones fail.
func FromLookup(get Lookup) (Config, error) {
	maxRetries, err := intFromLookup(get, EnvMaxRetries, DefaultMaxRetries)
	if err != nil {
		return Config{}, err
	}
	timeout, err := intFromLookup(get, EnvTimeout, DefaultTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BucketName:      get(EnvBucketName),
		Directory:       get(EnvDirectory),
		Region:          get(EnvRegion),
		AccessKeyID:     get(EnvAccessKeyID),
		SecretAccessKey: get(EnvSecretAccessKey),
		SessionToken:    get(EnvSessionToken),
		Profile:         get(EnvProfile),
		MaxRetries:      maxRetries,
		Timeout:         timeout,
	}, nil
}

func intFromLookup(get Lookup, key string, def int) (int, error) {
	raw := get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidConfig, key, raw)
	}
	return v, nil
}
