package studyplan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan/progress"
	"github.com/peaklearn/peaklearn-backend/pkg/ctxutil"
)

// SetTopicCompletion marks one topic completed or not and re-derives the
// plan flag. An index outside the topic list yields domain.ErrOutOfRange.
func (s *Service) SetTopicCompletion(ctx context.Context, input SetTopicCompletionInput) (*TopicResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Lock, apply and persist
	var res progress.Result
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan, err := s.plans.GetForUpdate(txCtx, userID, input.PlanID)
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}

		res, err = progress.SetTopicCompletion(*plan, input.TopicIndex, input.Completed)
		if err != nil {
			return err
		}

		// Re-marking a topic with its current state is a no-op.
		if plan.Topics[input.TopicIndex].Completed == input.Completed && !res.CompletionChanged {
			return nil
		}

		return s.persist(txCtx, userID, &res.Plan, map[string]any{
			"topicIndex":        input.TopicIndex,
			"topicCompleted":    input.Completed,
			"planCompleted":     res.Plan.Completed,
			"completionChanged": res.CompletionChanged,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("studyplan.SetTopicCompletion: %w", err)
	}

	// Step 4: Notify after commit
	if res.CompletionChanged {
		s.publish(ctx, userID, res.Plan, domain.CompletionTriggerTopic)
	}

	return &TopicResult{
		Topic:             res.Plan.Topics[input.TopicIndex],
		PlanCompleted:     res.Plan.Completed,
		Progress:          res.Progress,
		CompletionChanged: res.CompletionChanged,
	}, nil
}

// SetPlanCompletion overrides the plan's completed flag without touching
// topics.
func (s *Service) SetPlanCompletion(ctx context.Context, input SetPlanCompletionInput) (*PlanView, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Lock, apply and persist
	var res progress.Result
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plan, err := s.plans.GetForUpdate(txCtx, userID, input.PlanID)
		if err != nil {
			return fmt.Errorf("lock plan: %w", err)
		}

		res = progress.SetPlanCompletion(*plan, input.Completed)
		if !res.CompletionChanged {
			return nil
		}

		return s.persist(txCtx, userID, &res.Plan, map[string]any{
			"planCompleted": map[string]any{"old": plan.Completed, "new": res.Plan.Completed},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("studyplan.SetPlanCompletion: %w", err)
	}

	// Step 4: Notify after commit
	if res.CompletionChanged {
		s.publish(ctx, userID, res.Plan, domain.CompletionTriggerManual)
	}

	return &PlanView{Plan: res.Plan, Progress: res.Progress}, nil
}

// persist writes the new snapshot and its audit record. Must run inside the
// transaction holding the plan lock.
func (s *Service) persist(ctx context.Context, userID uuid.UUID, plan *domain.StudyPlan, changes map[string]any) error {
	updated, err := s.plans.UpdateProgress(ctx, plan)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	plan.UpdatedAt = updated.UpdatedAt

	if err := s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		UserID:     userID,
		EntityType: domain.EntityTypeStudyPlan,
		EntityID:   &plan.ID,
		Action:     domain.AuditActionUpdate,
		Changes:    changes,
		CreatedAt:  time.Now(),
	}); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	return nil
}

// publish emits a completion event. Delivery failures do not undo the
// committed change and are only logged.
func (s *Service) publish(ctx context.Context, userID uuid.UUID, plan domain.StudyPlan, trigger domain.CompletionTrigger) {
	evt := domain.PlanCompletionChanged{
		PlanID:     plan.ID,
		UserID:     userID,
		Completed:  plan.Completed,
		Trigger:    trigger,
		OccurredAt: time.Now(),
	}
	if err := s.events.PublishPlanCompletion(ctx, evt); err != nil {
		s.log.WarnContext(ctx, "publish completion event failed",
			slog.String("plan_id", plan.ID.String()),
			slog.String("trigger", trigger.String()),
			slog.String("error", err.Error()))
		return
	}

	s.log.InfoContext(ctx, "plan completion changed",
		slog.String("plan_id", plan.ID.String()),
		slog.Bool("completed", plan.Completed),
		slog.String("trigger", trigger.String()))
}
