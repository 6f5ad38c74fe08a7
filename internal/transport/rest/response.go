package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/peaklearn/peaklearn-backend/internal/domain"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Msg    string       `json:"msg"`
	Errors []fieldError `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Msg: msg})
}

// respondError translates a service error into the API error envelope.
// resource names the entity in not-found and already-exists messages.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, resource string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Msg: "Validation failed"}
		for _, fe := range ve.Errors {
			resp.Errors = append(resp.Errors, fieldError{Field: fe.Field, Message: fe.Message})
		}
		if len(ve.Errors) == 1 {
			resp.Msg = fmt.Sprintf("%s: %s", ve.Errors[0].Field, ve.Errors[0].Message)
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrOutOfRange):
		writeError(w, http.StatusNotFound, "Topic not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, resource+" already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "Conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

// decodeJSON reads a JSON request body into dst. Type mismatches, such as a
// string where a boolean is expected, are reported as errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

// pathUUID parses a UUID route parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
