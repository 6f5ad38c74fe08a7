package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/peaklearn/peaklearn-backend/internal/adapter/extractor"
	"github.com/peaklearn/peaklearn-backend/internal/adapter/postgres"
	auditrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/audit"
	documentrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/document"
	studyplanrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/studyplan"
	tokenrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/token"
	userrepo "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres/user"
	"github.com/peaklearn/peaklearn-backend/internal/auth"
	"github.com/peaklearn/peaklearn-backend/internal/config"
	authsvc "github.com/peaklearn/peaklearn-backend/internal/service/auth"
	"github.com/peaklearn/peaklearn-backend/internal/service/document"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan"
	usersvc "github.com/peaklearn/peaklearn-backend/internal/service/user"
	"github.com/peaklearn/peaklearn-backend/internal/transport/middleware"
	"github.com/peaklearn/peaklearn-backend/internal/transport/rest"
	"github.com/peaklearn/peaklearn-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional infrastructure, wires services and handlers,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Backend),
		slog.Bool("redis", cfg.RedisEnabled()),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		migrator, err := postgres.NewMigrator(pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		results, err := migrator.Up(ctx)
		if err != nil {
			return fmt.Errorf("app: migrate up: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	// Infrastructure.
	blobs, err := NewBlobStore(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer CloseQuietly(logger, "blob store", blobs)

	events, err := newEventPublisher(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer CloseQuietly(logger, "event publisher", events)

	txm := postgres.NewTxManager(pool)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Repositories.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	audit := auditrepo.New(pool)
	docs := documentrepo.New(pool)
	plans := studyplanrepo.New(pool)

	// Services.
	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, cfg.Auth)
	userService := usersvc.NewService(logger, users, tokens, audit, txm, cfg.Auth.PasswordHashCost)
	documentService := document.NewService(logger, docs, plans, audit, blobs, extractor.NewStub(), txm, cfg.Storage.MaxUploadBytes)
	studyPlanService := studyplan.NewService(logger, plans, docs, audit, events, txm, cfg.Documents.MaxPlansListed)

	// Handlers.
	health := rest.NewHealthHandler(pool, BuildVersion())
	if p, ok := events.(pingCloser); ok {
		health.WithCheck("redis", p)
	}

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	router := NewRouter(RouterDeps{
		Logger:        logger,
		Tokens:        authService,
		CORS:          cfg.CORS,
		RateLimiter:   rl,
		AuthPerMinute: cfg.RateLimit.AuthPerMinute,
		Health:        health,
		Auth:          rest.NewAuthHandler(authService, logger),
		User:          rest.NewUserHandler(userService, logger),
		Documents:     rest.NewDocumentHandler(documentService, cfg.Storage.MaxUploadBytes, logger),
		StudyPlans:    rest.NewStudyPlanHandler(studyPlanService, logger),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
