package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig marks any configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration and reports the first violation.
func (c Config) Validate() error {
	if c.BucketName == "" {
		return fmt.Errorf("%w: bucket cannot be empty", ErrInvalidConfig)
	}
	if c.Directory == "" {
		return fmt.Errorf("%w: directory cannot be empty", ErrInvalidConfig)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries cannot be negative", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be a positive number", ErrInvalidConfig)
	}
	if c.Region != "" && strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("%w: region cannot be empty if provided", ErrInvalidConfig)
	}
	return nil
}
