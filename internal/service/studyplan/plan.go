package studyplan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan/progress"
	"github.com/peaklearn/peaklearn-backend/pkg/ctxutil"
)

// GetPlan returns one of the caller's plans with its source document and
// progress. Plans of other users are reported as not found.
func (s *Service) GetPlan(ctx context.Context, planID uuid.UUID) (*PlanView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.plans.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("studyplan.GetPlan: %w", err)
	}

	view := &PlanView{Plan: *plan, Progress: progress.Compute(*plan)}

	doc, err := s.docs.GetByID(ctx, userID, plan.DocumentID)
	switch {
	case err == nil:
		view.Document = &DocumentSummary{ID: doc.ID, Filename: doc.Filename}
	case errors.Is(err, domain.ErrNotFound):
		// Document removed concurrently; serve the plan without it.
	default:
		return nil, fmt.Errorf("studyplan.GetPlan document: %w", err)
	}

	return view, nil
}

// ListPlans returns the caller's plans, newest first, each with progress.
func (s *Service) ListPlans(ctx context.Context, input ListPlansInput) ([]PlanView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := domain.StudyPlanFilter{
		Completed: input.Completed,
		Limit:     s.clampLimit(input.Limit),
		Offset:    input.Offset,
	}
	if subject := strings.TrimSpace(input.Subject); subject != "" {
		filter.Subject = &subject
	}

	plans, err := s.plans.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("studyplan.ListPlans: %w", err)
	}

	views := make([]PlanView, len(plans))
	for i, p := range plans {
		views[i] = PlanView{Plan: p, Progress: progress.Compute(p)}
	}
	return views, nil
}

// History returns audit records of a plan, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.AuditRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.plans.GetByID(ctx, userID, input.PlanID); err != nil {
		return nil, fmt.Errorf("studyplan.History: %w", err)
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.audit.ListByEntity(ctx, userID, domain.EntityTypeStudyPlan, input.PlanID, limit)
	if err != nil {
		return nil, fmt.Errorf("studyplan.History list: %w", err)
	}
	return records, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit == 0 {
		limit = defaultListLimit
	}
	if s.maxPlansListed > 0 && limit > s.maxPlansListed {
		limit = s.maxPlansListed
	}
	return limit
}
