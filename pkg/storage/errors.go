package storage

import (
	"errors"
)

var (
	ErrCredential = errors.New("credential error")
	ErrAuthFailed = errors.New("authentication failed")
	ErrStorage    = errors.New("storage operation failed")
	ErrUpload     = errors.New("upload failed")
)

// IsConnectorError returns true if err belongs to this module's error
// taxonomy. Configuration validation failures are not part of it, see
// config.ErrInvalidConfig.
func IsConnectorError(err error) bool {
	return errors.Is(err, ErrCredential) ||
		errors.Is(err, ErrAuthFailed) ||
		errors.Is(err, ErrStorage) ||
		errors.Is(err, ErrUpload)
}

// IsStorageError returns true for storage operation failures, upload
// failures included.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrUpload)
}
