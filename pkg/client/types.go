package client

import (
	"time"

	"github.com/google/uuid"
)

// User is the public profile of an account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by signup, login and refresh.
type AuthResponse struct {
	Msg          string `json:"msg"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Credentials returns request credentials for the issued access token.
func (a *AuthResponse) Credentials() Credentials {
	return Credentials{AccessToken: a.Token}
}

// SignupRequest creates an account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OutlineTopic is one topic of a document outline.
type OutlineTopic struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
}

// Document is an uploaded study material. Topics are only filled by
// GetDocument.
type Document struct {
	ID         uuid.UUID      `json:"_id"`
	Filename   string         `json:"filename"`
	Subject    string         `json:"subject"`
	SizeBytes  int64          `json:"sizeBytes"`
	UploadedAt time.Time      `json:"uploadedAt"`
	Topics     []OutlineTopic `json:"topics,omitempty"`
}

// UploadResponse identifies the stored document and its generated plan.
type UploadResponse struct {
	Msg         string    `json:"msg"`
	DocumentID  uuid.UUID `json:"documentId"`
	StudyPlanID uuid.UUID `json:"studyPlanId"`
}

// Topic is a plan topic with its completion flag.
type Topic struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
	Completed  bool     `json:"completed"`
}

// DocumentRef names the document a plan was generated from.
type DocumentRef struct {
	ID       uuid.UUID `json:"_id"`
	Filename string    `json:"filename"`
}

// StudyPlan is a plan with derived progress. Topics are omitted in listings.
type StudyPlan struct {
	ID              uuid.UUID    `json:"_id"`
	Subject         string       `json:"subject"`
	HoursPerDay     float64      `json:"hoursPerDay"`
	Completed       bool         `json:"completed"`
	Progress        float64      `json:"progress"`
	ProgressPercent int          `json:"progressPercent"`
	Document        *DocumentRef `json:"document,omitempty"`
	Topics          []Topic      `json:"topics,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// TopicCompletion is the result of toggling one topic.
type TopicCompletion struct {
	Topic             Topic   `json:"topic"`
	Completed         bool    `json:"completed"`
	Progress          float64 `json:"progress"`
	CompletionChanged bool    `json:"completionChanged"`
}

// HistoryEntry is one audited change of a plan.
type HistoryEntry struct {
	ID        uuid.UUID      `json:"_id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ListPlansOptions filters study plan listings. Zero values are omitted.
type ListPlansOptions struct {
	Completed *bool
	Subject   string
	Limit     int
	Offset    int
}
