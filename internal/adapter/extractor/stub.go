// Package extractor provides topic extraction for uploaded documents.
package extractor

import (
	"context"
	"strings"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

// Stub returns a fixed outline built from the document subject.
// It stands in for a real document-analysis backend.
type Stub struct{}

// NewStub creates a new stub extractor.
func NewStub() *Stub { return &Stub{} }

// Extract returns five topics ordered by descending importance.
// The document bytes are not inspected.
func (s *Stub) Extract(ctx context.Context, subject string) ([]domain.OutlineTopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subject = strings.TrimSpace(subject)
	return []domain.OutlineTopic{
		{
			Title:      "Introduction to " + subject,
			Subtopics:  []string{"Scope and goals", "Key terminology"},
			Importance: 0.9,
		},
		{
			Title:      "Core concepts of " + subject,
			Subtopics:  []string{"Definitions", "Fundamental principles", "Worked examples"},
			Importance: 0.85,
		},
		{
			Title:      "Methods and techniques",
			Subtopics:  []string{"Standard approaches", "Common pitfalls"},
			Importance: 0.7,
		},
		{
			Title:      "Applications of " + subject,
			Subtopics:  []string{"Case studies", "Problem solving"},
			Importance: 0.6,
		},
		{
			Title:      "Review and practice",
			Subtopics:  []string{"Summary", "Practice questions"},
			Importance: 0.4,
		},
	}, nil
}
