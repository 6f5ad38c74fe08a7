package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventTypePlanCompletionChanged is emitted when a plan's completed flag flips.
const EventTypePlanCompletionChanged = "plan.completion_changed"

// PlanCompletionChanged records a flip of StudyPlan.Completed.
type PlanCompletionChanged struct {
	PlanID     uuid.UUID
	UserID     uuid.UUID
	Completed  bool
	Trigger    CompletionTrigger
	OccurredAt time.Time
}
