package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jmfelice/aws-s3/pkg/storage"
)

// List returns the keys under the configured directory in service
// order, optionally filtered to those containing the given substring.
// An empty contains matches every key.
func (c *Connector) List(ctx context.Context, contains string) ([]string, error) {
	prefix := strings.TrimPrefix(c.cfg.Directory, "/")

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.cfg.BucketName),
		Prefix: aws.String(prefix),
	})

	var files []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			c.log.Error().Err(err).Str("prefix", prefix).Msg("failed to list files")
			return nil, fmt.Errorf("%w: failed to list files: %w", storage.ErrStorage, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if contains == "" || strings.Contains(key, contains) {
				files = append(files, key)
			}
		}
	}

	c.log.Info().Int("files", len(files)).Str("prefix", prefix).Msg("listed files")
	return files, nil
}
