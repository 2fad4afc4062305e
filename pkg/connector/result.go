package connector

// UploadResult reports the outcome of an upload operation. Success is
// true exactly when Errors is empty.
type UploadResult struct {
	Success bool
	Message string
	Errors  []FileError
}

// FileError records one file that failed during a parallel upload.
type FileError struct {
	File string
	Err  error
}

// DeleteResult reports the outcome of a delete operation. Success is
// false when the service rejected any key or when no keys were given.
type DeleteResult struct {
	Success bool
	Message string
	Errors  []DeleteError
}

// DeleteError is a per-key failure reported by the service.
type DeleteError struct {
	Key     string
	Code    string
	Message string
}
