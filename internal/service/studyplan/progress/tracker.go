// Package progress holds the completion state machine of a study plan.
//
// Every function takes a plan snapshot and returns a new snapshot; inputs are
// never mutated. Callers own persistence and must serialize the
// read-modify-write cycle per plan.
package progress

import (
	"fmt"
	"math"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// Result is the outcome of a tracker operation.
type Result struct {
	Plan     domain.StudyPlan
	Progress float64
	// CompletionChanged is true when the plan-level completed flag differs
	// from the input snapshot.
	CompletionChanged bool
}

// SetTopicCompletion sets the completed flag of one topic and re-derives the
// plan flag: the plan is completed iff it has topics and all of them are
// completed. On error the returned plan is the input snapshot.
//
// A plan with an empty topic slice fails with domain.ErrOutOfRange for every
// index. A nil slice means the snapshot was never loaded and fails with
// domain.ErrValidation; loaded plans always carry a non-nil slice.
func SetTopicCompletion(plan domain.StudyPlan, topicIndex int, completed bool) (Result, error) {
	if err := validateSnapshot(plan); err != nil {
		return Result{Plan: plan}, err
	}

	if topicIndex < 0 || topicIndex >= len(plan.Topics) {
		return Result{Plan: plan, Progress: Compute(plan)},
			fmt.Errorf("topic index %d (plan has %d topics): %w", topicIndex, len(plan.Topics), domain.ErrOutOfRange)
	}

	next := plan.Clone()
	next.Topics[topicIndex].Completed = completed

	all := allCompleted(next)
	changed := next.Completed != all
	next.Completed = all

	return Result{
		Plan:              next,
		Progress:          Compute(next),
		CompletionChanged: changed,
	}, nil
}

// SetPlanCompletion overrides the plan-level flag. Topic flags are left
// untouched, so a manually completed plan may still have open topics until
// the next SetTopicCompletion re-derives the flag.
func SetPlanCompletion(plan domain.StudyPlan, completed bool) Result {
	next := plan.Clone()
	changed := next.Completed != completed
	next.Completed = completed

	return Result{
		Plan:              next,
		Progress:          Compute(next),
		CompletionChanged: changed,
	}
}

// Compute returns the percentage of completed topics, 0 for a plan without
// topics. The value is not rounded.
func Compute(plan domain.StudyPlan) float64 {
	total := len(plan.Topics)
	if total == 0 {
		return 0
	}
	return float64(plan.CompletedTopicCount()) / float64(total) * 100
}

// Round converts a progress value to the whole percent shown to users.
func Round(progress float64) int {
	return int(math.Round(progress))
}

func allCompleted(plan domain.StudyPlan) bool {
	if len(plan.Topics) == 0 {
		return false
	}
	for _, t := range plan.Topics {
		if !t.Completed {
			return false
		}
	}
	return true
}

func validateSnapshot(plan domain.StudyPlan) error {
	if plan.Topics == nil {
		return domain.NewValidationError("topics", "missing")
	}

	var errs []domain.FieldError
	for i, t := range plan.Topics {
		if t.Title == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("topics[%d].title", i),
				Message: "required",
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
