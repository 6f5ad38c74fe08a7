package studyplan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type planRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.StudyPlan, error)
	GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.StudyPlan, error)
	UpdateProgress(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	List(ctx context.Context, ownerID uuid.UUID, filter domain.StudyPlanFilter) ([]domain.StudyPlan, error)
}

type documentRepo interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Document, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, ownerID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type eventPublisher interface {
	PublishPlanCompletion(ctx context.Context, evt domain.PlanCompletionChanged) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service tracks study plan progress. Every progress change runs as a
// locked read-modify-write inside one transaction.
type Service struct {
	log            *slog.Logger
	plans          planRepo
	docs           documentRepo
	audit          auditRepo
	events         eventPublisher
	tx             txManager
	maxPlansListed int
}

// NewService creates a new study plan service.
func NewService(
	logger *slog.Logger,
	plans planRepo,
	docs documentRepo,
	audit auditRepo,
	events eventPublisher,
	tx txManager,
	maxPlansListed int,
) *Service {
	return &Service{
		log:            logger.With("service", "studyplan"),
		plans:          plans,
		docs:           docs,
		audit:          audit,
		events:         events,
		tx:             tx,
		maxPlansListed: maxPlansListed,
	}
}
