package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    domain.ErrorKind `json:"kind"`
	Stage   string           `json:"stage,omitempty"`
	Message string           `json:"message"`
	Fields  []fieldError     `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// feedbackResponse is the reviewer view of a record.
type feedbackResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           string    `json:"user_id"`
	Feedback         string    `json:"feedback"`
	FilteredFeedback string    `json:"filtered_feedback"`
	IsVerified       bool      `json:"is_verified"`
	IsProfane        bool      `json:"is_profane"`
	CreatedAt        time.Time `json:"created_at"`
}

func toFeedbackResponse(fb *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:               fb.ID,
		UserID:           fb.UserID,
		Feedback:         fb.Text,
		FilteredFeedback: fb.FilteredText,
		IsVerified:       fb.IsVerified,
		IsProfane:        fb.IsProfane(),
		CreatedAt:        fb.CreatedAt,
	}
}

func toFeedbackResponses(items []*domain.Feedback) []feedbackResponse {
	out := make([]feedbackResponse, 0, len(items))
	for _, fb := range items {
		out = append(out, toFeedbackResponse(fb))
	}
	return out
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// handleError maps a domain error to its status and the error envelope.
// Internal errors are logged and their message hidden.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	detail := errorDetail{Kind: kind, Message: err.Error()}

	var status int
	switch kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
	case domain.KindStorage:
		status = http.StatusServiceUnavailable
		detail.Message = "storage unavailable, retry later"
		var se *domain.StorageError
		if errors.As(err, &se) {
			detail.Stage = se.Stage.String()
		}
		w.Header().Set("Retry-After", "1")
		log.ErrorContext(r.Context(), "storage error", slog.String("error", err.Error()))
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindAuth:
		status = http.StatusUnauthorized
	default:
		status = http.StatusInternalServerError
		detail.Kind = domain.KindInternal
		detail.Message = "internal server error"
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	}

	writeJSON(w, status, errorResponse{Error: detail})
}

// decodeJSON reads a bounded JSON body that must not carry unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON object")
	}
	return nil
}
