package studyplan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

const (
	defaultListLimit    = 50
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	maxSubjectLen       = 255
)

// ListPlansInput holds filters and pagination for plan listings.
type ListPlansInput struct {
	Completed *bool
	Subject   string
	Limit     int
	Offset    int
}

// Validate validates the list input. Limits above the configured maximum are
// clamped by the service rather than rejected.
func (i ListPlansInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(strings.TrimSpace(i.Subject)) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetTopicCompletionInput holds parameters for a topic toggle.
type SetTopicCompletionInput struct {
	PlanID     uuid.UUID
	TopicIndex int
	Completed  bool
}

// Validate validates the topic toggle input. The index range is checked
// against the locked plan.
func (i SetTopicCompletionInput) Validate() error {
	if i.PlanID == uuid.Nil {
		return domain.NewValidationError("planId", "required")
	}
	return nil
}

// SetPlanCompletionInput holds parameters for the manual plan override.
type SetPlanCompletionInput struct {
	PlanID    uuid.UUID
	Completed bool
}

// Validate validates the plan override input.
func (i SetPlanCompletionInput) Validate() error {
	if i.PlanID == uuid.Nil {
		return domain.NewValidationError("planId", "required")
	}
	return nil
}

// HistoryInput holds parameters for the plan audit history.
type HistoryInput struct {
	PlanID uuid.UUID
	Limit  int
}

// Validate validates the history input.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "planId", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
