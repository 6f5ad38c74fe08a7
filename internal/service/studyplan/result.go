package studyplan

import (
	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// DocumentSummary identifies the source document of a plan.
type DocumentSummary struct {
	ID       uuid.UUID
	Filename string
}

// PlanView is a plan with its computed progress percentage.
type PlanView struct {
	Plan     domain.StudyPlan
	Progress float64
	// Document is nil in listings and when the source document is gone.
	Document *DocumentSummary
}

// TopicResult is the outcome of a topic toggle.
type TopicResult struct {
	Topic             domain.Topic
	PlanCompleted     bool
	Progress          float64
	CompletionChanged bool
}
