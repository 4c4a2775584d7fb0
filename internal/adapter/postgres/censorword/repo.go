// Package censorword stores the database-managed part of the censor word list.
package censorword

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

const table = "censor_words"

var columns = []string{"id", "word", "is_active", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Word      string    `db:"word"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.CensorWord {
	return domain.CensorWord{ID: r.ID, Word: r.Word, IsActive: r.IsActive, CreatedAt: r.CreatedAt.UTC()}
}

// Repo provides censor word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new censor word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ActiveWords returns every active word, sorted.
func (r *Repo) ActiveWords(ctx context.Context) ([]string, error) {
	query, args, err := postgres.Builder.
		Select("word").
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active words: %w", err)
	}

	var words []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &words, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", table)
	}
	return words, nil
}

// List returns all words including inactive ones.
func (r *Repo) List(ctx context.Context) ([]domain.CensorWord, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", table)
	}

	out := make([]domain.CensorWord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Add stores word as active. Adding an existing word re-activates it.
func (r *Repo) Add(ctx context.Context, word string) (*domain.CensorWord, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns("word", "is_active").
		Values(word, true).
		Suffix("ON CONFLICT (word) DO UPDATE SET is_active = true RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build add word: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "censor_word", word)
	}
	w := rw.toDomain()
	return &w, nil
}

// Remove deletes word. Returns domain.ErrNotFound if it is not stored.
func (r *Repo) Remove(ctx context.Context, word string) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"word": word}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove word: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "censor_word", word)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("censor_word %s: %w", word, domain.ErrNotFound)
	}
	return nil
}
