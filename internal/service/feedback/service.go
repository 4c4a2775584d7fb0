package feedback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/domain"
)

const notifyTimeout = 10 * time.Second

type feedbackRepo interface {
	Insert(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error)
	List(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error)
}

type textCensor interface {
	Censor(text string) string
}

type notifier interface {
	FeedbackSubmitted(ctx context.Context, fb domain.Feedback) error
}

// Service accepts feedback submissions and serves the public listing.
type Service struct {
	repo     feedbackRepo
	censor   textCensor
	notifier notifier
	cfg      config.FeedbackConfig
	log      *slog.Logger
	tracer   trace.Tracer

	pending sync.WaitGroup
}

// NewService creates a new feedback service. notifier may be nil.
func NewService(
	log *slog.Logger,
	repo feedbackRepo,
	censor textCensor,
	notifier notifier,
	cfg config.FeedbackConfig,
) *Service {
	return &Service{
		repo:     repo,
		censor:   censor,
		notifier: notifier,
		cfg:      cfg,
		log:      log.With("service", "feedback"),
		tracer:   otel.Tracer("github.com/Ren-zee/exploremore/internal/service/feedback"),
	}
}

// Wait blocks until in-flight notifications have finished.
func (s *Service) Wait() {
	s.pending.Wait()
}
