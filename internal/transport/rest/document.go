package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/internal/service/document"
)

const multipartMemory = 8 << 20

type documentService interface {
	Upload(ctx context.Context, input document.UploadInput) (*document.UploadResult, error)
	ListDocuments(ctx context.Context, input document.ListInput) ([]domain.Document, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Download(ctx context.Context, id uuid.UUID) (*document.Download, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// DocumentHandler serves document upload and management endpoints.
type DocumentHandler struct {
	svc            documentService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. maxUploadBytes bounds the
// multipart body read from the client.
func NewDocumentHandler(svc documentService, maxUploadBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxUploadBytes: maxUploadBytes, log: logger.With("handler", "document")}
}

type outlineTopicResponse struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
}

type documentResponse struct {
	ID         uuid.UUID              `json:"_id"`
	Filename   string                 `json:"filename"`
	Subject    string                 `json:"subject"`
	SizeBytes  int64                  `json:"sizeBytes"`
	UploadedAt time.Time              `json:"uploadedAt"`
	Topics     []outlineTopicResponse `json:"topics,omitempty"`
}

type uploadResponse struct {
	Msg         string    `json:"msg"`
	DocumentID  uuid.UUID `json:"documentId"`
	StudyPlanID uuid.UUID `json:"studyPlanId"`
}

// Upload handles POST /api/documents/upload (multipart: file, subject,
// hoursPerDay).
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("file", "required"), "Document")
		return
	}
	defer file.Close()

	hours, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("hoursPerDay")), 64)
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("hoursPerDay", "must be a number"), "Document")
		return
	}

	result, err := h.svc.Upload(r.Context(), document.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Subject:     r.FormValue("subject"),
		HoursPerDay: hours,
		Body:        file,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Document")
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Msg:         "Document uploaded",
		DocumentID:  result.DocumentID,
		StudyPlanID: result.StudyPlanID,
	})
}

// List handles GET /api/documents?limit=&offset=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePaging(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	docs, err := h.svc.ListDocuments(r.Context(), document.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err, "Document")
		return
	}

	out := make([]documentResponse, len(docs))
	for i := range docs {
		out[i] = toDocumentResponse(&docs[i], false)
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": out})
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}

	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Document")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"document": toDocumentResponse(doc, true)})
}

// Download handles GET /api/documents/{id}/download.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}

	dl, err := h.svc.Download(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "Document")
		return
	}
	defer dl.Body.Close()

	w.Header().Set("Content-Type", dl.Document.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": dl.Document.Filename,
	}))
	if dl.Document.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.Document.SizeBytes, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, dl.Body); err != nil {
		h.log.WarnContext(r.Context(), "download interrupted",
			slog.String("document_id", id.String()),
			slog.String("error", err.Error()))
	}
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Document not found")
		return
	}

	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "Document")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Msg: "Document deleted"})
}

func toDocumentResponse(d *domain.Document, withTopics bool) documentResponse {
	resp := documentResponse{
		ID:         d.ID,
		Filename:   d.Filename,
		Subject:    d.Subject,
		SizeBytes:  d.SizeBytes,
		UploadedAt: d.UploadedAt,
	}
	if withTopics {
		resp.Topics = make([]outlineTopicResponse, len(d.Topics))
		for i, t := range d.Topics {
			resp.Topics[i] = outlineTopicResponse{
				Title:      t.Title,
				Subtopics:  nonNil(t.Subtopics),
				Importance: t.Importance,
			}
		}
	}
	return resp
}

// parsePaging reads optional limit and offset query parameters.
func parsePaging(r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
