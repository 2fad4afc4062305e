package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		path := writeConfigFile(t, `{
			"bucket_name": "file-bucket",
			"directory": "file-dir/",
			"region": "ap-southeast-2",
			"profile": "file-profile",
			"max_retries": 5,
			"timeout": 60
		}`)

		cfg, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, Config{
			BucketName: "file-bucket",
			Directory:  "file-dir/",
			Region:     "ap-southeast-2",
			Profile:    "file-profile",
			MaxRetries: 5,
			Timeout:    60,
		}, cfg)
	})

	t.Run("defaults_for_omitted_fields", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "file-bucket", "directory": "file-dir/"}`)

		cfg, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
	})

	t.Run("missing_required_field", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "file-bucket"}`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "directory")
	})

	t.Run("empty_required_field", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "", "directory": "file-dir/"}`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("wrong_type", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "b", "directory": "d/", "max_retries": "three"}`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative_max_retries", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "b", "directory": "d/", "max_retries": -1}`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown_field_rejected", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "b", "directory": "d/", "endpoint": "http://localhost"}`)

		_, err := LoadFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid_json", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": `)

		_, err := LoadFile(path)

		assert.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))

		assert.Error(t, err)
	})
}

func TestValidateFile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeConfigFile(t, `{"bucket_name": "b", "directory": "d/"}`)

		assert.NoError(t, ValidateFile(path))
	})

	t.Run("relative_path", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"bucket_name": "b", "directory": "d/"}`), 0o600))
		t.Chdir(dir)

		assert.NoError(t, ValidateFile("config.json"))
	})

	t.Run("schema_violation", func(t *testing.T) {
		path := writeConfigFile(t, `{"directory": "d/"}`)

		err := ValidateFile(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorContains(t, err, "bucket_name")
	})
}
