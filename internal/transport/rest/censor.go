package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/domain"
)

type wordListService interface {
	ListWords(ctx context.Context) ([]domain.CensorWord, error)
	AddWord(ctx context.Context, word string) (*domain.CensorWord, error)
	RemoveWord(ctx context.Context, word string) error
	Reload(ctx context.Context) (int, error)
	Stats() censor.Stats
}

// CensorHandler serves word list management under /api/admin/censor.
type CensorHandler struct {
	svc      wordListService
	maxBytes int64
	log      *slog.Logger
}

// NewCensorHandler creates a CensorHandler.
func NewCensorHandler(svc wordListService, maxBodyBytes int64, logger *slog.Logger) *CensorHandler {
	return &CensorHandler{
		svc:      svc,
		maxBytes: maxBodyBytes,
		log:      logger.With("handler", "censor"),
	}
}

type wordResponse struct {
	ID        uuid.UUID `json:"id"`
	Word      string    `json:"word"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type addWordRequest struct {
	Word string `json:"word"`
}

type reloadResponse struct {
	Words int `json:"words"`
}

type censorStatsResponse struct {
	Words         int        `json:"words"`
	Lookups       int64      `json:"lookups"`
	Masked        int64      `json:"masked"`
	Reloads       int64      `json:"reloads"`
	LastReloadAt  *time.Time `json:"last_reload_at,omitempty"`
	LastLookupDur string     `json:"last_lookup_duration"`
}

func toWordResponse(w domain.CensorWord) wordResponse {
	return wordResponse{ID: w.ID, Word: w.Word, IsActive: w.IsActive, CreatedAt: w.CreatedAt}
}

// ListWords handles GET /api/admin/censor/words.
func (h *CensorHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]wordResponse, 0, len(words))
	for _, cw := range words {
		out = append(out, toWordResponse(cw))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddWord handles POST /api/admin/censor/words.
func (h *CensorHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	cw, err := h.svc.AddWord(r.Context(), req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWordResponse(*cw))
}

// RemoveWord handles DELETE /api/admin/censor/words/{word}.
func (h *CensorHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("word", "invalid escape"))
		return
	}
	if err := h.svc.RemoveWord(r.Context(), word); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reload handles POST /api/admin/censor/reload.
func (h *CensorHandler) Reload(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Reload(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{Words: n})
}

// Stats handles GET /api/admin/censor/stats.
func (h *CensorHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Stats()
	resp := censorStatsResponse{
		Words:         st.WordCount,
		Lookups:       st.TotalLookups,
		Masked:        st.TotalMasked,
		Reloads:       st.TotalReloads,
		LastLookupDur: st.LastLookupDur.String(),
	}
	if !st.LastReloadAt.IsZero() {
		resp.LastReloadAt = &st.LastReloadAt
	}
	writeJSON(w, http.StatusOK, resp)
}
