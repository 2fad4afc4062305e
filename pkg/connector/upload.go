package connector

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/semaphore"

	"github.com/jmfelice/aws-s3/pkg/storage"
)

// ObjectKey derives the destination key for a local file: the directory
// prefix joined with the file's base name, forward slashes whatever the
// host convention.
func ObjectKey(directory, localPath string) string {
	key := path.Join(directory, filepath.Base(localPath))
	return strings.ReplaceAll(key, `\`, "/")
}

// Upload sends one local file to the configured bucket and directory.
// The file must exist and not be a directory; that is checked before
// any network traffic. Transport failures come back as upload errors
// with the cause attached.
func (c *Connector) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		c.log.Error().Str("file", localPath).Msg("file not found")
		return UploadResult{}, fmt.Errorf("%w: file not found: %s", storage.ErrUpload, localPath)
	}

	key := ObjectKey(c.cfg.Directory, localPath)
	dest := fmt.Sprintf("s3://%s/%s", c.cfg.BucketName, key)

	file, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: opening %s: %w", storage.ErrUpload, localPath, err)
	}
	defer file.Close()

	c.log.Info().Str("file", localPath).Str("destination", dest).Msg("uploading file")

	_, err = c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.cfg.BucketName),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		c.log.Error().Err(err).Str("file", localPath).Msg("upload failed")
		return UploadResult{}, fmt.Errorf("%w: failed to upload %s: %w", storage.ErrUpload, localPath, err)
	}

	c.log.Info().Str("destination", dest).Msg("upload successful")
	return UploadResult{Success: true, Message: "uploaded to " + dest}, nil
}

// UploadAll sends a batch of local files. Sequential mode uploads in
// order and stops at the first failure, returning its error. Parallel
// mode uploads every file regardless of failures and aggregates them
// per file in the result; the returned error is always nil then.
func (c *Connector) UploadAll(ctx context.Context, localPaths []string, parallel bool) (UploadResult, error) {
	if parallel {
		return c.uploadParallel(ctx, localPaths), nil
	}

	for _, localPath := range localPaths {
		if _, err := c.Upload(ctx, localPath); err != nil {
			return UploadResult{}, err
		}
	}

	return UploadResult{
		Success: true,
		Message: fmt.Sprintf("uploaded %d files", len(localPaths)),
	}, nil
}

type fileOutcome struct {
	file string
	err  error
}

func (c *Connector) uploadParallel(ctx context.Context, localPaths []string) UploadResult {
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	outcomes := make(chan fileOutcome, len(localPaths))

	// Upload each file in its own goroutine, gated by the semaphore
	for _, localPath := range localPaths {
		wg.Add(1)

		go func(p string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes <- fileOutcome{file: p, err: err}
				return
			}
			defer sem.Release(1)

			_, err := c.Upload(ctx, p)
			outcomes <- fileOutcome{file: p, err: err}
		}(localPath)
	}

	wg.Wait()
	close(outcomes)

	// Collect failures in completion order
	var errs []FileError
	for outcome := range outcomes {
		if outcome.err != nil {
			c.log.Error().Err(outcome.err).Str("file", outcome.file).Msg("parallel upload failed")
			errs = append(errs, FileError{File: outcome.file, Err: outcome.err})
		}
	}

	if len(errs) > 0 {
		return UploadResult{Success: false, Message: "some files failed to upload", Errors: errs}
	}

	c.log.Info().Int("files", len(localPaths)).Msg("parallel upload successful")
	return UploadResult{
		Success: true,
		Message: fmt.Sprintf("uploaded %d files in parallel", len(localPaths)),
	}
}
