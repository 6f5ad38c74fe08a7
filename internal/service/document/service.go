package document

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type documentRepo interface {
	Create(ctx context.Context, doc *domain.Document) (*domain.Document, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Document, error)
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
	ListPurgeable(ctx context.Context, before time.Time, limit int) ([]domain.Document, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type planRepo interface {
	Create(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error)
	DeleteByDocument(ctx context.Context, ownerID, documentID uuid.UUID) error
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type blobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type topicExtractor interface {
	Extract(ctx context.Context, subject string) ([]domain.OutlineTopic, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages uploaded documents and the study plans generated from them.
type Service struct {
	log            *slog.Logger
	docs           documentRepo
	plans          planRepo
	audit          auditRepo
	blobs          blobStore
	extractor      topicExtractor
	tx             txManager
	maxUploadBytes int64
}

// NewService creates a new document service.
func NewService(
	logger *slog.Logger,
	docs documentRepo,
	plans planRepo,
	audit auditRepo,
	blobs blobStore,
	extractor topicExtractor,
	tx txManager,
	maxUploadBytes int64,
) *Service {
	return &Service{
		log:            logger.With("service", "document"),
		docs:           docs,
		plans:          plans,
		audit:          audit,
		blobs:          blobs,
		extractor:      extractor,
		tx:             tx,
		maxUploadBytes: maxUploadBytes,
	}
}
