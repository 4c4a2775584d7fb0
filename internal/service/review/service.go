package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	MaxBulkIDs   = 200
)

type feedbackRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error)
	List(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error)
	Stats(ctx context.Context) (domain.FeedbackStats, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service exposes the reviewer operations over stored feedback.
type Service struct {
	repo feedbackRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new review service.
func NewService(log *slog.Logger, repo feedbackRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "review"),
	}
}
