// Package feedback implements the feedback store on PostgreSQL.
package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/adapter/postgres"
	"github.com/Ren-zee/exploremore/internal/domain"
)

const table = "feedback"

var columns = []string{"id", "user_id", "feedback", "filtered_feedback", "is_verified", "created_at"}

type row struct {
	ID           uuid.UUID `db:"id"`
	UserID       string    `db:"user_id"`
	Text         string    `db:"feedback"`
	FilteredText string    `db:"filtered_feedback"`
	IsVerified   bool      `db:"is_verified"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:           r.ID,
		UserID:       r.UserID,
		Text:         r.Text,
		FilteredText: r.FilteredText,
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new feedback repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores a new unverified record in a single statement. The database
// assigns id and created_at.
func (r *Repo) Insert(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("user_id", "feedback", "filtered_feedback", "is_verified").
		Values(nf.UserID, nf.Text, nf.FilteredText, false).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert feedback: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "insert feedback for user", nf.UserID)
	}
	return rw.toDomain(), nil
}

// GetByID returns a record by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get feedback: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapScanError(err, id)
	}
	return rw.toDomain(), nil
}

// SetVerified sets is_verified on an existing record and returns the
// updated row. Returns domain.ErrNotFound if id does not exist.
func (r *Repo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error) {
	query, args, err := postgres.Builder.
		Update(table).
		Set("is_verified", verified).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set verified: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, mapScanError(err, id)
	}
	return rw.toDomain(), nil
}

// List returns records matching f, newest first, and the total number of
// matches ignoring limit and offset.
func (r *Repo) List(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterConditions(f)

	countQuery, countArgs, err := postgres.Builder.
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count feedback: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "count", table)
	}
	if total == 0 {
		return []*domain.Feedback{}, 0, nil
	}

	sb := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		sb = sb.Offset(uint64(f.Offset))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list feedback: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "list", table)
	}

	items := make([]*domain.Feedback, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}
	return items, total, nil
}

type statsRow struct {
	Total           int `db:"total"`
	Verified        int `db:"verified"`
	Profane         int `db:"profane"`
	ProfaneVerified int `db:"profane_verified"`
}

// Stats aggregates verification and profanity counters in one scan.
func (r *Repo) Stats(ctx context.Context) (domain.FeedbackStats, error) {
	query, args, err := postgres.Builder.
		Select(
			"count(*) AS total",
			"count(*) FILTER (WHERE is_verified) AS verified",
			"count(*) FILTER (WHERE filtered_feedback <> feedback) AS profane",
			"count(*) FILTER (WHERE is_verified AND filtered_feedback <> feedback) AS profane_verified",
		).
		From(table).
		ToSql()
	if err != nil {
		return domain.FeedbackStats{}, fmt.Errorf("build feedback stats: %w", err)
	}

	var s statsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return domain.FeedbackStats{}, postgres.MapError(err, "stats", table)
	}

	return domain.FeedbackStats{
		Total:             s.Total,
		Verified:          s.Verified,
		Unverified:        s.Total - s.Verified,
		Profane:           s.Profane,
		ProfaneVerified:   s.ProfaneVerified,
		ProfaneUnverified: s.Profane - s.ProfaneVerified,
	}, nil
}

func filterConditions(f domain.FeedbackFilter) squirrel.And {
	where := squirrel.And{}
	if f.Verified != nil {
		where = append(where, squirrel.Eq{"is_verified": *f.Verified})
	}
	if f.Profane != nil {
		if *f.Profane {
			where = append(where, squirrel.Expr("filtered_feedback <> feedback"))
		} else {
			where = append(where, squirrel.Expr("filtered_feedback = feedback"))
		}
	}
	if f.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *f.UserID})
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		where = append(where, squirrel.ILike{"feedback": "%" + escapeLike(strings.TrimSpace(*f.Search)) + "%"})
	}
	if f.CreatedAfter != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.CreatedAfter})
	}
	if f.CreatedBefore != nil {
		where = append(where, squirrel.Lt{"created_at": *f.CreatedBefore})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func mapScanError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("feedback %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "feedback", id)
}
