package feedback

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// Submit validates, censors and stores one submission. Validation failures
// return a *domain.ValidationError without touching the store. Store
// failures return a *domain.StorageError and are not retried.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Feedback, error) {
	ctx, span := s.tracer.Start(ctx, "feedback.Submit")
	defer span.End()

	if err := input.Validate(s.cfg.MaxUserIDLength, s.cfg.MaxTextLength); err != nil {
		s.log.InfoContext(ctx, "feedback rejected",
			slog.String("stage", domain.StageRejected.String()),
			slog.String("error", err.Error()),
		)
		span.SetStatus(codes.Error, "rejected")
		return nil, err
	}

	userID := strings.TrimSpace(input.UserID)
	text := *input.Text
	filtered := s.censor.Censor(text)
	span.SetAttributes(
		attribute.String("feedback.user_id", userID),
		attribute.Bool("feedback.profane", filtered != text),
	)

	fb, err := s.insert(ctx, domain.NewFeedback{
		UserID:       userID,
		Text:         text,
		FilteredText: filtered,
	})
	if err != nil {
		serr := domain.NewStorageError(domain.StagePersisted, "insert feedback", err)
		s.log.ErrorContext(ctx, "feedback not stored",
			slog.String("stage", domain.StageFailed.String()),
			slog.String("user_id", userID),
			slog.Bool("timeout", serr.Timeout()),
			slog.String("error", err.Error()),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		return nil, serr
	}

	s.log.InfoContext(ctx, "feedback stored",
		slog.String("stage", domain.StageAcknowledged.String()),
		slog.String("feedback_id", fb.ID.String()),
		slog.String("user_id", userID),
		slog.Bool("profane", fb.IsProfane()),
	)

	s.notify(ctx, *fb)
	return fb, nil
}

func (s *Service) insert(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error) {
	if s.cfg.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.StoreTimeout)
		defer cancel()
	}
	return s.repo.Insert(ctx, nf)
}

func (s *Service) notify(ctx context.Context, fb domain.Feedback) {
	if s.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()

		start := time.Now()
		if err := s.notifier.FeedbackSubmitted(ctx, fb); err != nil {
			s.log.WarnContext(ctx, "reviewer notification failed",
				slog.String("feedback_id", fb.ID.String()),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
		}
	}()
}
