package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// LoadFile reads, schema-validates and parses a JSON configuration file.
// Fields absent from the file take their defaults.
func LoadFile(path string) (Config, error) {
	if err := ValidateFile(path); err != nil {
		return Config{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := Config{
		MaxRetries: DefaultMaxRetries,
		Timeout:    DefaultTimeout,
	}
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateFile validates a configuration file against the JSON schema.
func ValidateFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config file path: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(Schema)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + abs)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(details, "; "))
	}

	return nil
}
