package connector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jmfelice/aws-s3/pkg/storage"
)

// Delete removes the given keys from the bucket in one batch call. With
// no keys it returns an unsuccessful result without touching the
// network. Keys the service rejects land in the result; a transport
// failure is returned as an error instead.
func (c *Connector) Delete(ctx context.Context, keys ...string) (DeleteResult, error) {
	if len(keys) == 0 {
		c.log.Warn().Msg("no keys provided for deletion")
		return DeleteResult{Success: false, Message: "no keys provided for deletion"}, nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(key)})
	}

	out, err := c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.cfg.BucketName),
		Delete: &types.Delete{Objects: objects},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("failed to delete files")
		return DeleteResult{}, fmt.Errorf("%w: failed to delete files: %w", storage.ErrStorage, err)
	}

	if len(out.Errors) > 0 {
		errs := make([]DeleteError, 0, len(out.Errors))
		for _, e := range out.Errors {
			errs = append(errs, DeleteError{
				Key:     aws.ToString(e.Key),
				Code:    aws.ToString(e.Code),
				Message: aws.ToString(e.Message),
			})
		}
		c.log.Error().Int("errors", len(errs)).Msg("some files could not be deleted")
		return DeleteResult{Success: false, Message: "some files could not be deleted", Errors: errs}, nil
	}

	c.log.Info().Int("files", len(out.Deleted)).Str("bucket", c.cfg.BucketName).Msg("deleted files")
	return DeleteResult{
		Success: true,
		Message: fmt.Sprintf("deleted %d files", len(out.Deleted)),
	}, nil
}
