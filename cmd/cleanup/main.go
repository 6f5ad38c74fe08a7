// Command cleanup purges soft-deleted documents older than the configured
// retention period: their blobs are removed from storage, then the rows.
// It is intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/peaklearn/peaklearn-backend/internal/adapter/extractor"
	"github.com/peaklearn/peaklearn-backend/internal/adapter/postgres"
	auditrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/audit"
	documentrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/document"
	studyplanrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/studyplan"
	"github.com/peaklearn/peaklearn-backend/internal/app"
	"github.com/peaklearn/peaklearn-backend/internal/config"
	"github.com/peaklearn/peaklearn-backend/internal/service/document"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("document purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	blobs, err := app.NewBlobStore(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer app.CloseQuietly(logger, "blob store", blobs)

	svc := document.NewService(
		logger,
		documentrepo.New(pool),
		studyplanrepo.New(pool),
		auditrepo.New(pool),
		blobs,
		extractor.NewStub(),
		postgres.NewTxManager(pool),
		cfg.Storage.MaxUploadBytes,
	)

	threshold := time.Now().Add(-cfg.Documents.PurgeAfter)
	total := 0
	for {
		n, err := svc.PurgeDeleted(ctx, cfg.Documents.PurgeAfter, cfg.Documents.PurgeBatchSize)
		total += n
		if err != nil {
			return err
		}
		if n < cfg.Documents.PurgeBatchSize {
			break
		}
	}

	logger.Info("document purge completed",
		slog.Int("purged", total),
		slog.Time("threshold", threshold),
	)
	return nil
}
