// Package gcs stores document bytes in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

const (
	writeTimeout  = 2 * time.Minute
	deleteTimeout = 30 * time.Second
)

// Config selects the bucket and credentials.
type Config struct {
	Bucket          string
	CredentialsFile string
}

// Store reads and writes objects in one bucket.
type Store struct {
	client *storage.Client
	bucket string
	log    *slog.Logger
}

// New creates a GCS client. Without a credentials file the client uses
// application default credentials, or the emulator when
// STORAGE_EMULATOR_HOST is set.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs: bucket is required")
	}

	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	log := logger.With("adapter", "gcs")
	log.Info("object storage initialized", slog.String("bucket", cfg.Bucket))

	return NewWithClient(client, cfg.Bucket, log), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *storage.Client, bucket string, logger *slog.Logger) *Store {
	return &Store{client: client, bucket: bucket, log: logger}
}

// Put uploads r to key. A read error from r aborts the upload, so no
// partial object is committed.
func (s *Store) Put(ctx context.Context, key, contentType string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		// Canceling the writer's context before Close discards the upload.
		cancel()
		_ = w.Close()
		return fmt.Errorf("gcs write %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close writer %q: %w", key, err)
	}
	return nil
}

// Open returns a reader for key. A missing object yields domain.ErrNotFound.
// The caller must close the reader; ctx bounds the whole read.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("blob %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("gcs open %q: %w", key, err)
	}
	return rc, nil
}

// Delete removes key. Deleting a missing object is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete %q in bucket %q: %w", key, s.bucket, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
