package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Topic is one unit of study content inside a plan. Topics are embedded in
// the plan and addressed by their index.
type Topic struct {
	Title      string
	Subtopics  []string
	Importance float64
	Completed  bool
}

// StudyPlan is the plan generated from a document. The topic list has a fixed
// length after creation; only completion flags change.
type StudyPlan struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	DocumentID  uuid.UUID
	Subject     string
	HoursPerDay float64
	Topics      []Topic
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the plan so the copy can be mutated without
// touching the original snapshot.
func (p StudyPlan) Clone() StudyPlan {
	out := p
	if p.Topics != nil {
		out.Topics = make([]Topic, len(p.Topics))
		for i, t := range p.Topics {
			t.Subtopics = slices.Clone(t.Subtopics)
			out.Topics[i] = t
		}
	}
	return out
}

// CompletedTopicCount returns the number of topics marked completed.
func (p StudyPlan) CompletedTopicCount() int {
	n := 0
	for _, t := range p.Topics {
		if t.Completed {
			n++
		}
	}
	return n
}

// TopicsFromOutline builds incomplete plan topics from a document outline.
func TopicsFromOutline(outline []OutlineTopic) []Topic {
	topics := make([]Topic, len(outline))
	for i, o := range outline {
		topics[i] = Topic{
			Title:      o.Title,
			Subtopics:  slices.Clone(o.Subtopics),
			Importance: o.Importance,
		}
	}
	return topics
}

// StudyPlanFilter contains filtering/pagination parameters for plan listings.
type StudyPlanFilter struct {
	Completed *bool
	Subject   *string
	Limit     int
	Offset    int
}
