package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/pkg/ctxutil"
)

const pdfContentType = "application/pdf"

var pdfMagic = []byte("%PDF-")

// Upload stores a PDF, extracts its outline and creates the document with its
// study plan. The blob is removed again if nothing could be persisted.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	// Step 1: Validate input
	if err := input.Validate(s.maxUploadBytes); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Sniff the PDF header
	body, err := sniffPDF(input.Body)
	if err != nil {
		return nil, err
	}
	if s.maxUploadBytes > 0 {
		body = &capReader{r: body, remaining: s.maxUploadBytes}
	}

	now := time.Now()
	doc := &domain.Document{
		ID:          uuid.New(),
		OwnerID:     userID,
		Filename:    path.Base(strings.TrimSpace(input.Filename)),
		Subject:     strings.TrimSpace(input.Subject),
		ContentType: pdfContentType,
		SizeBytes:   input.Size,
		UploadedAt:  now,
	}
	doc.StorageKey = storageKey(userID, doc.ID)

	// Step 4: Store bytes
	if err := s.blobs.Put(ctx, doc.StorageKey, pdfContentType, body); err != nil {
		s.removeBlob(ctx, doc.StorageKey)
		return nil, fmt.Errorf("document.Upload store: %w", err)
	}

	// Step 5: Extract topics
	outline, err := s.extractor.Extract(ctx, doc.Subject)
	if err != nil {
		s.removeBlob(ctx, doc.StorageKey)
		return nil, fmt.Errorf("document.Upload extract: %w", err)
	}
	doc.Topics = outline

	plan := &domain.StudyPlan{
		ID:          uuid.New(),
		OwnerID:     userID,
		DocumentID:  doc.ID,
		Subject:     doc.Subject,
		HoursPerDay: input.HoursPerDay,
		Topics:      domain.TopicsFromOutline(outline),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Step 6: Persist document, plan and audit atomically
	var created *domain.StudyPlan
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.docs.Create(txCtx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}

		var err error
		created, err = s.plans.Create(txCtx, plan)
		if err != nil {
			return fmt.Errorf("create study plan: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     userID,
			EntityType: domain.EntityTypeDocument,
			EntityID:   &doc.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"filename":    doc.Filename,
				"subject":     doc.Subject,
				"studyPlanId": created.ID.String(),
				"topics":      len(created.Topics),
			},
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		return nil
	})
	if err != nil {
		s.removeBlob(ctx, doc.StorageKey)
		return nil, fmt.Errorf("document.Upload: %w", err)
	}

	s.log.InfoContext(ctx, "document uploaded",
		slog.String("user_id", userID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("study_plan_id", created.ID.String()),
		slog.Int64("size_bytes", doc.SizeBytes),
	)

	return &UploadResult{DocumentID: doc.ID, StudyPlanID: created.ID}, nil
}

// removeBlob deletes an orphaned blob. Failures are only logged.
func (s *Service) removeBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.WarnContext(ctx, "failed to remove orphaned blob",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}

func storageKey(ownerID, docID uuid.UUID) string {
	return fmt.Sprintf("documents/%s/%s.pdf", ownerID, docID)
}

// sniffPDF checks the leading bytes of r and returns a reader that still
// yields the full stream.
func sniffPDF(r io.Reader) (io.Reader, error) {
	head := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("document.Upload read: %w", err)
	}
	if !bytes.Equal(head[:n], pdfMagic) {
		return nil, domain.NewValidationError("file", "only PDF files are allowed")
	}
	return io.MultiReader(bytes.NewReader(head), r), nil
}

// capReader fails once more than remaining bytes are read, so a body larger
// than its declared size never lands in storage in full.
type capReader struct {
	r         io.Reader
	remaining int64
}

func (c *capReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		return n, domain.NewValidationError("file", "file too large")
	}
	return n, err
}
