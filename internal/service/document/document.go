package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/pkg/ctxutil"
)

// ListDocuments returns the caller's live documents, newest first.
func (s *Service) ListDocuments(ctx context.Context, input ListInput) ([]domain.Document, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	docs, err := s.docs.ListByOwner(ctx, userID, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("document.ListDocuments: %w", err)
	}
	return docs, nil
}

// GetDocument returns one of the caller's documents.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	doc, err := s.docs.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("document.GetDocument: %w", err)
	}
	return doc, nil
}

// Download opens the stored bytes of one of the caller's documents.
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*Download, error) {
	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := s.blobs.Open(ctx, doc.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("document.Download open %s: %w", doc.StorageKey, err)
	}
	return &Download{Document: doc, Body: body}, nil
}

// DeleteDocument soft-deletes the document and removes its study plan. The
// stored bytes stay until PurgeDeleted runs past the retention window.
func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		doc, err := s.docs.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}

		if err := s.docs.SoftDelete(txCtx, userID, id); err != nil {
			return fmt.Errorf("soft delete: %w", err)
		}
		if err := s.plans.DeleteByDocument(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete study plan: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeDocument,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"filename": doc.Filename},
			CreatedAt:  time.Now(),
		})
	})
	if err != nil {
		return fmt.Errorf("document.DeleteDocument: %w", err)
	}

	s.log.InfoContext(ctx, "document deleted",
		slog.String("user_id", userID.String()),
		slog.String("document_id", id.String()))

	return nil
}

// PurgeDeleted removes blobs and rows of documents soft-deleted more than
// olderThan ago. It processes at most batch documents and returns how many
// were purged. A document whose blob cannot be removed is skipped and
// retried on the next run.
func (s *Service) PurgeDeleted(ctx context.Context, olderThan time.Duration, batch int) (int, error) {
	if batch <= 0 {
		return 0, domain.NewValidationError("batch", "must be positive")
	}

	docs, err := s.docs.ListPurgeable(ctx, time.Now().Add(-olderThan), batch)
	if err != nil {
		return 0, fmt.Errorf("document.PurgeDeleted list: %w", err)
	}

	purged := 0
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return purged, err
		}

		if err := s.blobs.Delete(ctx, doc.StorageKey); err != nil {
			s.log.WarnContext(ctx, "purge: blob delete failed",
				slog.String("document_id", doc.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if err := s.docs.HardDelete(ctx, doc.ID); err != nil {
			return purged, fmt.Errorf("document.PurgeDeleted delete %s: %w", doc.ID, err)
		}
		purged++
	}

	if purged > 0 {
		s.log.InfoContext(ctx, "purged deleted documents", slog.Int("count", purged))
	}
	return purged, nil
}
