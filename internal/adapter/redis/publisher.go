// Package redis publishes domain events to a Redis pub/sub channel.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/peaklearn/peaklearn-backend/internal/config"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// Publisher sends events as JSON messages on one channel.
type Publisher struct {
	rdb     *goredis.Client
	channel string
	log     *slog.Logger
}

// NewPublisher connects to Redis and pings it so startup fails fast.
func NewPublisher(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Publisher, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &Publisher{
		rdb:     rdb,
		channel: cfg.Channel,
		log:     logger.With("adapter", "redis_publisher"),
	}, nil
}

// planCompletionMessage is the wire form of domain.PlanCompletionChanged.
type planCompletionMessage struct {
	Type       string    `json:"type"`
	PlanID     uuid.UUID `json:"planId"`
	UserID     uuid.UUID `json:"userId"`
	Completed  bool      `json:"completed"`
	Trigger    string    `json:"trigger"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PublishPlanCompletion publishes a plan.completion_changed message.
func (p *Publisher) PublishPlanCompletion(ctx context.Context, evt domain.PlanCompletionChanged) error {
	raw, err := json.Marshal(planCompletionMessage{
		Type:       domain.EventTypePlanCompletionChanged,
		PlanID:     evt.PlanID,
		UserID:     evt.UserID,
		Completed:  evt.Completed,
		Trigger:    evt.Trigger.String(),
		OccurredAt: evt.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal plan completion event: %w", err)
	}

	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("type", domain.EventTypePlanCompletionChanged),
		slog.String("plan_id", evt.PlanID.String()),
	)
	return nil
}

// Ping checks the Redis connection.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// Close closes the Redis client.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}

// LogPublisher stands in for Publisher when Redis is not configured.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher returns a publisher that only logs events.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{log: logger.With("adapter", "log_publisher")}
}

// PublishPlanCompletion logs the event at info level.
func (p *LogPublisher) PublishPlanCompletion(ctx context.Context, evt domain.PlanCompletionChanged) error {
	p.log.InfoContext(ctx, "plan completion changed",
		slog.String("plan_id", evt.PlanID.String()),
		slog.String("user_id", evt.UserID.String()),
		slog.Bool("completed", evt.Completed),
		slog.String("trigger", evt.Trigger.String()),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }
