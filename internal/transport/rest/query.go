package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// queryParser reads typed query parameters and collects parse errors.
type queryParser struct {
	values url.Values
	errs   []domain.FieldError
}

func (q *queryParser) fail(field, msg string) {
	q.errs = append(q.errs, domain.FieldError{Field: field, Message: msg})
}

func (q *queryParser) intParam(name string) int {
	v := q.values.Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(name, "must be an integer")
		return 0
	}
	return n
}

func (q *queryParser) boolParam(name string) *bool {
	v := q.values.Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name, "must be true or false")
		return nil
	}
	return &b
}

func (q *queryParser) stringParam(name string) *string {
	v := strings.TrimSpace(q.values.Get(name))
	if v == "" {
		return nil
	}
	return &v
}

func (q *queryParser) timeParam(name string) *time.Time {
	v := q.values.Get(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		q.fail(name, "must be an RFC 3339 timestamp")
		return nil
	}
	return &t
}

func (q *queryParser) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
