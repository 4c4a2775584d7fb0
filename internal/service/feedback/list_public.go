package feedback

import (
	"context"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// ListPublic returns verified feedback, newest first, and the total count.
// Callers must expose only FilteredText.
func (s *Service) ListPublic(ctx context.Context, input ListPublicInput) ([]*domain.Feedback, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 || (s.cfg.PublicListLimit > 0 && limit > s.cfg.PublicListLimit) {
		limit = s.cfg.PublicListLimit
	}

	verified := true
	items, total, err := s.repo.List(ctx, domain.FeedbackFilter{
		Verified: &verified,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, domain.NewStorageError("", "list public feedback", err)
	}
	return items, total, nil
}
