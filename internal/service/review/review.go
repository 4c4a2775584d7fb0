package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// List returns feedback matching input, newest first, and the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Feedback, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.List(ctx, input.filter())
	if err != nil {
		return nil, 0, storageErr("list feedback", err)
	}
	return items, total, nil
}

// Get returns one record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	fb, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get feedback", err)
	}
	return fb, nil
}

// Stats returns counts over the whole review queue.
func (s *Service) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.FeedbackStats{}, storageErr("feedback stats", err)
	}
	return st, nil
}

// SetVerified marks one record verified or unverified. Only is_verified
// changes.
func (s *Service) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	fb, err := s.repo.SetVerified(ctx, id, verified)
	if err != nil {
		return nil, storageErr("set verified", err)
	}

	s.log.InfoContext(ctx, "feedback reviewed",
		slog.String("feedback_id", id.String()),
		slog.Bool("verified", verified),
	)
	return fb, nil
}

// BulkSetVerified applies one verification state to several records in a
// single transaction. If any id is missing nothing changes.
func (s *Service) BulkSetVerified(ctx context.Context, input BulkInput) ([]*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	ids := input.uniqueIDs()

	var updated []*domain.Feedback
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated = make([]*domain.Feedback, 0, len(ids))
		for _, id := range ids {
			fb, err := s.repo.SetVerified(ctx, id, input.Verified)
			if err != nil {
				return err
			}
			updated = append(updated, fb)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("bulk set verified", err)
	}

	s.log.InfoContext(ctx, "feedback bulk reviewed",
		slog.Int("count", len(updated)),
		slog.Bool("verified", input.Verified),
	)
	return updated, nil
}

// storageErr keeps domain classifications and wraps anything else as a
// storage failure.
func storageErr(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists):
		return fmt.Errorf("%s: %w", op, err)
	}
	return domain.NewStorageError("", op, err)
}
