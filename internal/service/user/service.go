package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

// tokenRepo defines the refresh token operations needed by user service.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and password operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenRepo
	audit    auditRepo
	tx       txManager
	hashCost int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	audit auditRepo,
	tx txManager,
	hashCost int,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		tokens:   tokens,
		audit:    audit,
		tx:       tx,
		hashCost: hashCost,
	}
}
