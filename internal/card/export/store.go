package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	apperrors "github.com/allisson/cardgen/internal/errors"
)

// Store saves rendered artifacts into a blob bucket.
type Store struct {
	bucket *blob.Bucket
	now    func() time.Time
	render func(io.Writer, []cardDomain.Card) error
}

// NewStore creates a store writing into bucket. The store takes ownership of the bucket.
func NewStore(bucket *blob.Bucket) *Store {
	return &Store{
		bucket: bucket,
		now:    time.Now,
		render: WriteArtifact,
	}
}

// OpenStore opens the bucket described by location. A location containing "://"
// is treated as a bucket URL (mem://, file:///tmp/out, s3://, gs:// or
// azblob://); anything else is a local directory, created on demand.
func OpenStore(ctx context.Context, location string) (*Store, error) {
	if location == "" {
		location = "."
	}

	if strings.Contains(location, "://") {
		bucket, err := blob.OpenBucket(ctx, location)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrUnavailable, "failed to open bucket %s: %v", location, err)
		}
		return NewStore(bucket), nil
	}

	dir, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	})
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUnavailable, "failed to open output directory %s: %v", dir, err)
	}

	return NewStore(bucket), nil
}

// Save writes the artifact for cards and returns its key. A failed render
// leaves no object behind.
func (s *Store) Save(ctx context.Context, cards []cardDomain.Card) (string, error) {
	key := FileName(s.now())

	// canceling the writer's context before Close aborts the upload
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create artifact writer: %w", err)
	}

	if err := s.render(writer, cards); err != nil {
		cancel()
		_ = writer.Close()
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact: %w", err)
	}

	return key, nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

// Ping reports whether the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.bucket.IsAccessible(ctx)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrUnavailable, "bucket check failed: %v", err)
	}
	if !ok {
		return apperrors.Wrap(apperrors.ErrUnavailable, "bucket is not accessible")
	}
	return nil
}
