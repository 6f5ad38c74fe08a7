package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/peaklearn/peaklearn-backend/internal/adapter/blob/gcs"
	"github.com/peaklearn/peaklearn-backend/internal/adapter/blob/localfs"
	"github.com/peaklearn/peaklearn-backend/internal/adapter/redis"
	"github.com/peaklearn/peaklearn-backend/internal/config"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// BlobStore is the document byte storage shared by the server and cleanup.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// eventPublisher delivers plan completion events.
type eventPublisher interface {
	PublishPlanCompletion(ctx context.Context, evt domain.PlanCompletionChanged) error
	io.Closer
}

type pingCloser interface {
	Ping(ctx context.Context) error
	io.Closer
}

// NewBlobStore selects the storage backend named in cfg.
func NewBlobStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (BlobStore, error) {
	switch cfg.Backend {
	case config.StorageBackendGCS:
		store, err := gcs.New(ctx, gcs.Config{
			Bucket:          cfg.GCSBucket,
			CredentialsFile: cfg.GCSCredentialsFile,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("gcs blob store: %w", err)
		}
		return store, nil
	case config.StorageBackendLocal:
		store, err := localfs.New(cfg.LocalDir)
		if err != nil {
			return nil, fmt.Errorf("local blob store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// newEventPublisher connects to Redis when configured, otherwise events are
// only logged.
func newEventPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (eventPublisher, error) {
	if !cfg.RedisEnabled() {
		return redis.NewLogPublisher(logger), nil
	}
	pub, err := redis.NewPublisher(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// CloseQuietly closes v if it implements io.Closer, logging any error.
func CloseQuietly(logger *slog.Logger, name string, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("close failed", slog.String("component", name), slog.String("error", err.Error()))
	}
}
