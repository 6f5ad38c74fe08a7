package testhelper

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$seedseedseedseedseedseO",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedDocument creates a live document owned by ownerID with a two-topic outline.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, subject string) domain.Document {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()
	doc := domain.Document{
		ID:          id,
		OwnerID:     ownerID,
		Filename:    "notes-" + uniqueSuffix() + ".pdf",
		Subject:     subject,
		ContentType: "application/pdf",
		SizeBytes:   1024,
		StorageKey:  fmt.Sprintf("documents/%s/%s.pdf", ownerID, id),
		Topics: []domain.OutlineTopic{
			{Title: "Introduction", Subtopics: []string{"Overview"}, Importance: 0.9},
			{Title: "Fundamentals", Subtopics: []string{"Terms", "Rules"}, Importance: 0.5},
		},
		UploadedAt: now,
	}

	rows := make([]seedTopic, 0, len(doc.Topics))
	for _, tp := range doc.Topics {
		rows = append(rows, seedTopic{Title: tp.Title, Subtopics: tp.Subtopics, Importance: tp.Importance})
	}
	topics, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument marshal topics: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO documents (id, owner_id, filename, subject, content_type, size_bytes, storage_key, topics, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		doc.ID, doc.OwnerID, doc.Filename, doc.Subject, doc.ContentType, doc.SizeBytes, doc.StorageKey, topics, doc.UploadedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return doc
}

type seedTopic struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
	Completed  bool     `json:"completed,omitempty"`
}

// SeedPlan creates a study plan for doc with one topic per completed flag.
// The plan-level flag is derived from the topics.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, doc domain.Document, completed ...bool) domain.StudyPlan {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := domain.StudyPlan{
		ID:          uuid.New(),
		OwnerID:     doc.OwnerID,
		DocumentID:  doc.ID,
		Subject:     doc.Subject,
		HoursPerDay: 2,
		Topics:      make([]domain.Topic, 0, len(completed)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rows := make([]seedTopic, 0, len(completed))
	all := len(completed) > 0
	for i, c := range completed {
		title := fmt.Sprintf("Topic %d", i+1)
		plan.Topics = append(plan.Topics, domain.Topic{Title: title, Subtopics: []string{}, Importance: 0.5, Completed: c})
		rows = append(rows, seedTopic{Title: title, Subtopics: []string{}, Importance: 0.5, Completed: c})
		all = all && c
	}
	plan.Completed = all

	topics, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan marshal topics: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO study_plans (id, owner_id, document_id, subject, hours_per_day, topics, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		plan.ID, plan.OwnerID, plan.DocumentID, plan.Subject, plan.HoursPerDay, topics, plan.Completed, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert: %v", err)
	}

	return plan
}
