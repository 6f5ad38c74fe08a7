// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/peaklearn/peaklearn-backend/internal/adapter/postgres"
	tokenrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/token"
	userrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/user"
	"github.com/peaklearn/peaklearn-backend/internal/app"
	"github.com/peaklearn/peaklearn-backend/internal/auth"
	"github.com/peaklearn/peaklearn-backend/internal/config"
	authsvc "github.com/peaklearn/peaklearn-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(
		logger,
		userrepo.New(pool),
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("deleted", deleted))
}
