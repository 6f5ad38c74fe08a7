package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan"
	"github.com/peaklearn/peaklearn-backend/internal/service/studyplan/progress"
)

type studyPlanService interface {
	GetPlan(ctx context.Context, planID uuid.UUID) (*studyplan.PlanView, error)
	ListPlans(ctx context.Context, input studyplan.ListPlansInput) ([]studyplan.PlanView, error)
	SetTopicCompletion(ctx context.Context, input studyplan.SetTopicCompletionInput) (*studyplan.TopicResult, error)
	SetPlanCompletion(ctx context.Context, input studyplan.SetPlanCompletionInput) (*studyplan.PlanView, error)
	History(ctx context.Context, input studyplan.HistoryInput) ([]domain.AuditRecord, error)
}

// StudyPlanHandler serves study plan and progress endpoints.
type StudyPlanHandler struct {
	svc studyPlanService
	log *slog.Logger
}

// NewStudyPlanHandler creates a StudyPlanHandler.
func NewStudyPlanHandler(svc studyPlanService, logger *slog.Logger) *StudyPlanHandler {
	return &StudyPlanHandler{svc: svc, log: logger.With("handler", "studyplan")}
}

const (
	planResource = "Study plan"
	planNotFound = planResource + " not found"
)

// completionRequest uses a pointer so a missing field is distinguishable
// from false.
type completionRequest struct {
	Completed *bool `json:"completed"`
}

type topicResponse struct {
	Title      string   `json:"title"`
	Subtopics  []string `json:"subtopics"`
	Importance float64  `json:"importance"`
	Completed  bool     `json:"completed"`
}

type documentRef struct {
	ID       uuid.UUID `json:"_id"`
	Filename string    `json:"filename"`
}

type studyPlanResponse struct {
	ID              uuid.UUID       `json:"_id"`
	Subject         string          `json:"subject"`
	HoursPerDay     float64         `json:"hoursPerDay"`
	Completed       bool            `json:"completed"`
	Progress        float64         `json:"progress"`
	ProgressPercent int             `json:"progressPercent"`
	Document        *documentRef    `json:"document,omitempty"`
	Topics          []topicResponse `json:"topics,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type topicCompletionResponse struct {
	Topic             topicResponse `json:"topic"`
	Completed         bool          `json:"completed"`
	Progress          float64       `json:"progress"`
	CompletionChanged bool          `json:"completionChanged"`
}

type historyEntryResponse struct {
	ID        uuid.UUID      `json:"_id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// List handles GET /api/study-plans?completed=&subject=&limit=&offset=.
func (h *StudyPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePaging(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	input := studyplan.ListPlansInput{
		Subject: r.URL.Query().Get("subject"),
		Limit:   limit,
		Offset:  offset,
	}
	if v := r.URL.Query().Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "completed must be true or false")
			return
		}
		input.Completed = &completed
	}

	views, err := h.svc.ListPlans(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, planResource)
		return
	}

	out := make([]studyPlanResponse, len(views))
	for i := range views {
		out[i] = toStudyPlanResponse(&views[i], false)
	}
	writeJSON(w, http.StatusOK, map[string]any{"studyPlans": out})
}

// Get handles GET /api/study-plans/{planId}.
func (h *StudyPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathUUID(r, "planId")
	if !ok {
		writeError(w, http.StatusNotFound, planNotFound)
		return
	}

	view, err := h.svc.GetPlan(r.Context(), planID)
	if err != nil {
		respondError(w, r, h.log, err, planResource)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"studyPlan": toStudyPlanResponse(view, true)})
}

// SetTopicCompletion handles PATCH /api/study-plans/{planId}/topics/{topicIndex}.
func (h *StudyPlanHandler) SetTopicCompletion(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathUUID(r, "planId")
	if !ok {
		writeError(w, http.StatusNotFound, planNotFound)
		return
	}

	topicIndex, err := strconv.Atoi(chi.URLParam(r, "topicIndex"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Topic not found")
		return
	}

	var req completionRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Completed == nil {
		writeError(w, http.StatusBadRequest, "completed must be a boolean")
		return
	}

	res, err := h.svc.SetTopicCompletion(r.Context(), studyplan.SetTopicCompletionInput{
		PlanID:     planID,
		TopicIndex: topicIndex,
		Completed:  *req.Completed,
	})
	if err != nil {
		respondError(w, r, h.log, err, planResource)
		return
	}

	writeJSON(w, http.StatusOK, topicCompletionResponse{
		Topic:             toTopicResponse(res.Topic),
		Completed:         res.PlanCompleted,
		Progress:          res.Progress,
		CompletionChanged: res.CompletionChanged,
	})
}

// SetPlanCompletion handles PATCH /api/study-plans/{planId}.
func (h *StudyPlanHandler) SetPlanCompletion(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathUUID(r, "planId")
	if !ok {
		writeError(w, http.StatusNotFound, planNotFound)
		return
	}

	var req completionRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Completed == nil {
		writeError(w, http.StatusBadRequest, "completed must be a boolean")
		return
	}

	view, err := h.svc.SetPlanCompletion(r.Context(), studyplan.SetPlanCompletionInput{
		PlanID:    planID,
		Completed: *req.Completed,
	})
	if err != nil {
		respondError(w, r, h.log, err, planResource)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"studyPlan": toStudyPlanResponse(view, true)})
}

// History handles GET /api/study-plans/{planId}/history?limit=.
func (h *StudyPlanHandler) History(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathUUID(r, "planId")
	if !ok {
		writeError(w, http.StatusNotFound, planNotFound)
		return
	}

	limit, _, ok := parsePaging(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	records, err := h.svc.History(r.Context(), studyplan.HistoryInput{PlanID: planID, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err, planResource)
		return
	}

	out := make([]historyEntryResponse, len(records))
	for i, rec := range records {
		out[i] = historyEntryResponse{
			ID:        rec.ID,
			Action:    string(rec.Action),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": out})
}

func toTopicResponse(t domain.Topic) topicResponse {
	return topicResponse{
		Title:      t.Title,
		Subtopics:  nonNil(t.Subtopics),
		Importance: t.Importance,
		Completed:  t.Completed,
	}
}

func toStudyPlanResponse(v *studyplan.PlanView, withTopics bool) studyPlanResponse {
	resp := studyPlanResponse{
		ID:              v.Plan.ID,
		Subject:         v.Plan.Subject,
		HoursPerDay:     v.Plan.HoursPerDay,
		Completed:       v.Plan.Completed,
		Progress:        v.Progress,
		ProgressPercent: progress.Round(v.Progress),
		CreatedAt:       v.Plan.CreatedAt,
		UpdatedAt:       v.Plan.UpdatedAt,
	}
	if v.Document != nil {
		resp.Document = &documentRef{ID: v.Document.ID, Filename: v.Document.Filename}
	}
	if withTopics {
		resp.Topics = make([]topicResponse, len(v.Plan.Topics))
		for i, t := range v.Plan.Topics {
			resp.Topics[i] = toTopicResponse(t)
		}
	}
	return resp
}
