package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/service/feedback"
)

const submitMessage = "Feedback submitted successfully."

type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (*domain.Feedback, error)
	ListPublic(ctx context.Context, input feedback.ListPublicInput) ([]*domain.Feedback, int, error)
}

// FeedbackHandler serves the public feedback endpoints.
type FeedbackHandler struct {
	svc      feedbackService
	maxBytes int64
	log      *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, maxBodyBytes int64, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		svc:      svc,
		maxBytes: maxBodyBytes,
		log:      logger.With("handler", "feedback"),
	}
}

type submitRequest struct {
	UserID   string  `json:"user_id"`
	Feedback *string `json:"feedback"`
}

type submitResponse struct {
	ID       uuid.UUID        `json:"id"`
	Message  string           `json:"message"`
	Feedback feedbackResponse `json:"feedback"`
}

// publicFeedback exposes only the censored text.
type publicFeedback struct {
	ID        uuid.UUID `json:"id"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

// Submit handles POST /submit-feedback and POST /api/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fb, err := h.svc.Submit(r.Context(), feedback.SubmitInput{
		UserID: req.UserID,
		Text:   req.Feedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		ID:       fb.ID,
		Message:  submitMessage,
		Feedback: toFeedbackResponse(fb),
	})
}

// ListPublic handles GET /api/feedback/public?limit=&offset=.
func (h *FeedbackHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := queryParser{values: r.URL.Query()}
	input := feedback.ListPublicInput{
		Limit:  q.intParam("limit"),
		Offset: q.intParam("offset"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListPublic(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]publicFeedback, 0, len(items))
	for _, fb := range items {
		out = append(out, publicFeedback{ID: fb.ID, Feedback: fb.FilteredText, CreatedAt: fb.CreatedAt})
	}
	writeJSON(w, http.StatusOK, listResponse[publicFeedback]{
		Items:  out,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}
