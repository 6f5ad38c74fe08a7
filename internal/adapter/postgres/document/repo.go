// Package document implements the Document repository using PostgreSQL.
// Documents are soft-deleted; rows with deleted_at set are invisible to
// owner-facing reads and are removed later by Purge.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new document repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const documentColumns = `id, owner_id, filename, subject, content_type, size_bytes, storage_key, topics, uploaded_at, deleted_at`

const createSQL = `
INSERT INTO documents (id, owner_id, filename, subject, content_type, size_bytes, storage_key, topics, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + documentColumns

const getByIDSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

const softDeleteSQL = `
UPDATE documents SET deleted_at = now()
WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

const listPurgeableSQL = `
SELECT ` + documentColumns + `
FROM documents
WHERE deleted_at IS NOT NULL AND deleted_at < $1
ORDER BY deleted_at
LIMIT $2`

const hardDeleteSQL = `DELETE FROM documents WHERE id = $1 AND deleted_at IS NOT NULL`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a document row and returns it as stored.
func (r *Repo) Create(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	topics, err := marshalOutline(doc.Topics)
	if err != nil {
		return nil, fmt.Errorf("document %s marshal topics: %w", doc.ID, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		doc.ID, doc.OwnerID, doc.Filename, doc.Subject, doc.ContentType,
		doc.SizeBytes, doc.StorageKey, topics, doc.UploadedAt,
	)

	created, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", doc.ID)
	}
	return created, nil
}

// SoftDelete marks a live document as deleted.
// Returns domain.ErrNotFound when the document is missing, already deleted,
// or owned by someone else.
func (r *Repo) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, softDeleteSQL, id, ownerID)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// HardDelete removes a soft-deleted document row. Live rows are never touched.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, hardDeleteSQL, id); err != nil {
		return postgres.MapError(err, "document", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live document owned by ownerID.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Document, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, ownerID)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return doc, nil
}

// ListByOwner returns live documents for ownerID, newest first.
// Returns an empty slice (not nil) when the owner has none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.Document, error) {
	builder := postgres.Builder.
		Select(documentColumns).
		From("documents").
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		OrderBy("uploaded_at DESC", "id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build documents query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return collectDocuments(rows)
}

// ListPurgeable returns up to limit documents soft-deleted before the cutoff,
// oldest deletion first.
func (r *Repo) ListPurgeable(ctx context.Context, before time.Time, limit int) ([]domain.Document, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listPurgeableSQL, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list purgeable documents: %w", err)
	}
	return collectDocuments(rows)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type outlineRow struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
}

func marshalOutline(topics []domain.OutlineTopic) ([]byte, error) {
	rows := make([]outlineRow, len(topics))
	for i, t := range topics {
		subtopics := t.Subtopics
		if subtopics == nil {
			subtopics = []string{}
		}
		rows[i] = outlineRow{Title: t.Title, Subtopics: subtopics, Importance: t.Importance}
	}
	return json.Marshal(rows)
}

func unmarshalOutline(data []byte) ([]domain.OutlineTopic, error) {
	var rows []outlineRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	topics := make([]domain.OutlineTopic, len(rows))
	for i, row := range rows {
		topics[i] = domain.OutlineTopic{Title: row.Title, Subtopics: row.Subtopics, Importance: row.Importance}
	}
	return topics, nil
}

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		doc    domain.Document
		topics []byte
	)
	err := row.Scan(
		&doc.ID, &doc.OwnerID, &doc.Filename, &doc.Subject, &doc.ContentType,
		&doc.SizeBytes, &doc.StorageKey, &topics, &doc.UploadedAt, &doc.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.Topics, err = unmarshalOutline(topics)
	if err != nil {
		return nil, fmt.Errorf("document %s unmarshal topics: %w", doc.ID, err)
	}
	return &doc, nil
}

func collectDocuments(rows pgx.Rows) ([]domain.Document, error) {
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
