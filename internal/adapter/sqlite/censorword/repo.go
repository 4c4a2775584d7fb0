// Package censorword stores the database-managed censor words on SQLite.
package censorword

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/Ren-zee/exploremore/internal/adapter/sqlite"
	"github.com/Ren-zee/exploremore/internal/domain"
)

const table = "censor_words"

var columns = []string{"id", "word", "is_active", "created_at"}

type row struct {
	ID        string `db:"id"`
	Word      string `db:"word"`
	IsActive  bool   `db:"is_active"`
	CreatedAt string `db:"created_at"`
}

func (r row) toDomain() (domain.CensorWord, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.CensorWord{}, fmt.Errorf("parse censor word id %q: %w", r.ID, err)
	}
	createdAt, err := sqlite.ParseTime(r.CreatedAt)
	if err != nil {
		return domain.CensorWord{}, err
	}
	return domain.CensorWord{ID: id, Word: r.Word, IsActive: r.IsActive, CreatedAt: createdAt}, nil
}

// Repo provides censor word persistence backed by SQLite.
type Repo struct {
	db sqlite.Querier
}

// New creates a new censor word repository.
func New(db sqlite.Querier) *Repo {
	return &Repo{db: db}
}

// ActiveWords returns every active word, sorted.
func (r *Repo) ActiveWords(ctx context.Context) ([]string, error) {
	query, args, err := sqlite.Builder.
		Select("word").
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active words: %w", err)
	}

	var words []string
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &words, query, args...); err != nil {
		return nil, sqlite.MapError(err, "list", table)
	}
	return words, nil
}

// List returns all words including inactive ones.
func (r *Repo) List(ctx context.Context) ([]domain.CensorWord, error) {
	query, args, err := sqlite.Builder.Select(columns...).From(table).OrderBy("word").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "list", table)
	}

	out := make([]domain.CensorWord, 0, len(rows))
	for _, rw := range rows {
		w, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// Add stores word as active. Adding an existing word re-activates it.
func (r *Repo) Add(ctx context.Context, word string) (*domain.CensorWord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate censor word id: %w", err)
	}

	query, args, err := sqlite.Builder.
		Insert(table).
		Columns(columns...).
		Values(id.String(), word, true, sqlite.FormatTime(time.Now())).
		Suffix("ON CONFLICT (word) DO UPDATE SET is_active = 1 RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build add word: %w", err)
	}

	var rw row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, sqlite.MapError(err, "censor_word", word)
	}
	w, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Remove deletes word. Returns domain.ErrNotFound if it is not stored.
func (r *Repo) Remove(ctx context.Context, word string) error {
	query, args, err := sqlite.Builder.Delete(table).Where(squirrel.Eq{"word": word}).ToSql()
	if err != nil {
		return fmt.Errorf("build remove word: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "censor_word", word)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return sqlite.MapError(err, "censor_word", word)
	}
	if n == 0 {
		return fmt.Errorf("censor_word %s: %w", word, domain.ErrNotFound)
	}
	return nil
}
