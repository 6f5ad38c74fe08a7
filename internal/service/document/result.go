package document

import (
	"io"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// UploadResult identifies the document and plan created by an upload.
type UploadResult struct {
	DocumentID  uuid.UUID
	StudyPlanID uuid.UUID
}

// Download is an open document body with its metadata. Callers must close
// Body.
type Download struct {
	Document *domain.Document
	Body     io.ReadCloser
}
