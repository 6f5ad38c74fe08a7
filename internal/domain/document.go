package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutlineTopic is one topic of a document outline as produced by extraction.
// It carries no completion state; study plans copy it into Topic.
type OutlineTopic struct {
	Title      string
	Subtopics  []string
	Importance float64
}

// Document is an uploaded study material. The file bytes live in blob
// storage under StorageKey.
type Document struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Filename    string
	Subject     string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	Topics      []OutlineTopic
	UploadedAt  time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the document has been soft-deleted.
func (d *Document) IsDeleted() bool {
	return d.DeletedAt != nil
}
