package feedback

import (
	"strings"
	"unicode/utf8"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// SubmitInput is a raw submission. Text is nil when the client omitted it.
type SubmitInput struct {
	UserID string
	Text   *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate(maxUserID, maxText int) error {
	var errs []domain.FieldError

	userID := strings.TrimSpace(i.UserID)
	if userID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	} else if maxUserID > 0 && len(userID) > maxUserID {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "too long"})
	} else if strings.ContainsRune(userID, 0) {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must not contain NUL"})
	}

	if i.Text == nil {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "required"})
	} else if maxText > 0 && utf8.RuneCountInString(*i.Text) > maxText {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "too long"})
	} else if strings.ContainsRune(*i.Text, 0) {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "must not contain NUL"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListPublicInput holds pagination for the public listing.
type ListPublicInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListPublicInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
