package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/service/review"
)

type reviewService interface {
	List(ctx context.Context, input review.ListInput) ([]*domain.Feedback, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	Stats(ctx context.Context) (domain.FeedbackStats, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error)
	BulkSetVerified(ctx context.Context, input review.BulkInput) ([]*domain.Feedback, error)
}

// ReviewHandler serves the reviewer endpoints under /api/admin/feedback.
type ReviewHandler struct {
	svc      reviewService
	maxBytes int64
	log      *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, maxBodyBytes int64, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc:      svc,
		maxBytes: maxBodyBytes,
		log:      logger.With("handler", "review"),
	}
}

type statsResponse struct {
	Total             int `json:"total"`
	Verified          int `json:"verified"`
	Unverified        int `json:"unverified"`
	Profane           int `json:"profane"`
	ProfaneVerified   int `json:"profane_verified"`
	ProfaneUnverified int `json:"profane_unverified"`
}

type bulkRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type bulkResponse struct {
	Updated int                `json:"updated"`
	Items   []feedbackResponse `json:"items"`
}

// List handles GET /api/admin/feedback.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	q := queryParser{values: r.URL.Query()}
	input := review.ListInput{
		Verified:      q.boolParam("verified"),
		UserID:        q.stringParam("user_id"),
		Search:        q.stringParam("search"),
		CreatedAfter:  q.timeParam("created_after"),
		CreatedBefore: q.timeParam("created_before"),
		Limit:         q.intParam("limit"),
		Offset:        q.intParam("offset"),
	}
	if p := q.stringParam("profanity"); p != nil {
		input.Profanity = review.Profanity(*p)
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = review.DefaultLimit
	}
	writeJSON(w, http.StatusOK, listResponse[feedbackResponse]{
		Items:  toFeedbackResponses(items),
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	})
}

// Get handles GET /api/admin/feedback/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fb, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

// Stats handles GET /api/admin/feedback/stats.
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse(st))
}

// Verify handles POST /api/admin/feedback/{id}/verify.
func (h *ReviewHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, true)
}

// Unverify handles POST /api/admin/feedback/{id}/unverify.
func (h *ReviewHandler) Unverify(w http.ResponseWriter, r *http.Request) {
	h.setVerified(w, r, false)
}

// BulkVerify handles POST /api/admin/feedback/bulk-verify.
func (h *ReviewHandler) BulkVerify(w http.ResponseWriter, r *http.Request) {
	h.bulkSetVerified(w, r, true)
}

// BulkUnverify handles POST /api/admin/feedback/bulk-unverify.
func (h *ReviewHandler) BulkUnverify(w http.ResponseWriter, r *http.Request) {
	h.bulkSetVerified(w, r, false)
}

func (h *ReviewHandler) setVerified(w http.ResponseWriter, r *http.Request, verified bool) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fb, err := h.svc.SetVerified(r.Context(), id, verified)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
}

func (h *ReviewHandler) bulkSetVerified(w http.ResponseWriter, r *http.Request, verified bool) {
	var req bulkRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.BulkSetVerified(r.Context(), review.BulkInput{IDs: req.IDs, Verified: verified})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bulkResponse{Updated: len(items), Items: toFeedbackResponses(items)})
}
