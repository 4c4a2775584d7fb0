package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// Profanity filters a listing by whether the censor masked anything.
type Profanity string

const (
	ProfanityAny      Profanity = ""
	ProfanityClean    Profanity = "clean"
	ProfanityFiltered Profanity = "filtered"
)

// ListInput holds the reviewer listing filters.
type ListInput struct {
	Verified      *bool
	Profanity     Profanity
	UserID        *string
	Search        *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	switch i.Profanity {
	case ProfanityAny, ProfanityClean, ProfanityFiltered:
	default:
		errs = append(errs, domain.FieldError{Field: "profanity", Message: "must be clean or filtered"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.CreatedAfter != nil && i.CreatedBefore != nil && i.CreatedAfter.After(*i.CreatedBefore) {
		errs = append(errs, domain.FieldError{Field: "created_after", Message: "must not be after created_before"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.FeedbackFilter {
	f := domain.FeedbackFilter{
		Verified:      i.Verified,
		UserID:        i.UserID,
		Search:        i.Search,
		CreatedAfter:  i.CreatedAfter,
		CreatedBefore: i.CreatedBefore,
		Limit:         i.Limit,
		Offset:        i.Offset,
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	switch i.Profanity {
	case ProfanityClean:
		v := false
		f.Profane = &v
	case ProfanityFiltered:
		v := true
		f.Profane = &v
	}
	return f
}

// BulkInput lists the records a bulk verification applies to.
type BulkInput struct {
	IDs      []uuid.UUID
	Verified bool
}

// Validate checks all fields and collects all errors.
func (i BulkInput) Validate() error {
	var errs []domain.FieldError
	if len(i.IDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "required"})
	}
	if len(i.IDs) > MaxBulkIDs {
		errs = append(errs, domain.FieldError{Field: "ids", Message: "max 200"})
	}
	for _, id := range i.IDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "must not contain a nil id"})
			break
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// uniqueIDs returns ids without duplicates, preserving first occurrence order.
func (i BulkInput) uniqueIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(i.IDs))
	out := make([]uuid.UUID, 0, len(i.IDs))
	for _, id := range i.IDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
