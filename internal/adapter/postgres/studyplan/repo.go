// Package studyplan implements the StudyPlan repository using PostgreSQL.
// Topics are stored as a JSONB array on the plan row and addressed by index.
package studyplan

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/peaklearn/peaklearn-backend/internal/adapter/postgres"
	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// Repo provides study plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const planColumns = `id, owner_id, document_id, subject, hours_per_day, topics, completed, created_at, updated_at`

const createSQL = `
INSERT INTO study_plans (id, owner_id, document_id, subject, hours_per_day, topics, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + planColumns

const getByIDSQL = `
SELECT ` + planColumns + `
FROM study_plans
WHERE id = $1 AND owner_id = $2`

// Row lock held until the surrounding transaction ends.
const getForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const updateProgressSQL = `
UPDATE study_plans
SET topics = $3, completed = $4, updated_at = now()
WHERE id = $1 AND owner_id = $2
RETURNING ` + planColumns

const deleteByDocumentSQL = `DELETE FROM study_plans WHERE document_id = $1 AND owner_id = $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a study plan and returns it as stored.
// A second plan for the same document yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	topics, err := marshalTopics(plan.Topics)
	if err != nil {
		return nil, fmt.Errorf("study_plan %s marshal topics: %w", plan.ID, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		plan.ID, plan.OwnerID, plan.DocumentID, plan.Subject, plan.HoursPerDay,
		topics, plan.Completed, plan.CreatedAt, plan.UpdatedAt,
	)

	created, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", plan.ID)
	}
	return created, nil
}

// UpdateProgress persists the topic flags and the plan-level flag.
// Subject, hours and topic titles are written back unchanged from plan.
func (r *Repo) UpdateProgress(ctx context.Context, plan *domain.StudyPlan) (*domain.StudyPlan, error) {
	topics, err := marshalTopics(plan.Topics)
	if err != nil {
		return nil, fmt.Errorf("study_plan %s marshal topics: %w", plan.ID, err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateProgressSQL,
		plan.ID, plan.OwnerID, topics, plan.Completed,
	)

	updated, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", plan.ID)
	}
	return updated, nil
}

// DeleteByDocument removes the plan generated from documentID, if any.
func (r *Repo) DeleteByDocument(ctx context.Context, ownerID, documentID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteByDocumentSQL, documentID, ownerID); err != nil {
		return postgres.MapError(err, "study_plan", documentID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a plan owned by ownerID.
// Plans of other owners are reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.StudyPlan, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, ownerID)

	plan, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", id)
	}
	return plan, nil
}

// GetForUpdate is GetByID with a row lock. It must run inside a transaction
// started by TxManager; outside one the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*domain.StudyPlan, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getForUpdateSQL, id, ownerID)

	plan, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "study_plan", id)
	}
	return plan, nil
}

// List returns plans owned by ownerID matching the filter, newest first.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, filter domain.StudyPlanFilter) ([]domain.StudyPlan, error) {
	builder := postgres.Builder.
		Select(planColumns).
		From("study_plans").
		Where(sq.Eq{"owner_id": ownerID})

	if filter.Completed != nil {
		builder = builder.Where(sq.Eq{"completed": *filter.Completed})
	}
	if filter.Subject != nil {
		builder = builder.Where("lower(subject) = lower(?)", *filter.Subject)
	}

	builder = builder.OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build study_plans query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list study_plans: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.StudyPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan study_plan: %w", err)
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study_plans: %w", err)
	}
	return plans, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type topicRow struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
	Completed  bool     `json:"completed"`
}

func marshalTopics(topics []domain.Topic) ([]byte, error) {
	rows := make([]topicRow, len(topics))
	for i, t := range topics {
		subtopics := t.Subtopics
		if subtopics == nil {
			subtopics = []string{}
		}
		rows[i] = topicRow{Title: t.Title, Subtopics: subtopics, Importance: t.Importance, Completed: t.Completed}
	}
	return json.Marshal(rows)
}

func unmarshalTopics(data []byte) ([]domain.Topic, error) {
	var rows []topicRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	topics := make([]domain.Topic, len(rows))
	for i, row := range rows {
		topics[i] = domain.Topic{
			Title:      row.Title,
			Subtopics:  row.Subtopics,
			Importance: row.Importance,
			Completed:  row.Completed,
		}
	}
	return topics, nil
}

func scanPlan(row pgx.Row) (*domain.StudyPlan, error) {
	var (
		plan   domain.StudyPlan
		topics []byte
	)
	err := row.Scan(
		&plan.ID, &plan.OwnerID, &plan.DocumentID, &plan.Subject, &plan.HoursPerDay,
		&topics, &plan.Completed, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	plan.Topics, err = unmarshalTopics(topics)
	if err != nil {
		return nil, fmt.Errorf("study_plan %s unmarshal topics: %w", plan.ID, err)
	}
	return &plan, nil
}
