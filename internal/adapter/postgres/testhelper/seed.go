package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ren-zee/exploremore/internal/domain"
)

// UniqueUserID returns a user id that does not collide with other tests
// sharing the container.
func UniqueUserID() string {
	return "user-" + uuid.New().String()[:8]
}

// SeedFeedback inserts a feedback row directly, bypassing the repository.
func SeedFeedback(t *testing.T, pool *pgxpool.Pool, userID, text, filtered string, verified bool) domain.Feedback {
	t.Helper()
	ctx := context.Background()

	fb := domain.Feedback{
		ID:           uuid.New(),
		UserID:       userID,
		Text:         text,
		FilteredText: filtered,
		IsVerified:   verified,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO feedback (id, user_id, feedback, filtered_feedback, is_verified, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		fb.ID, fb.UserID, fb.Text, fb.FilteredText, fb.IsVerified, fb.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeedback: %v", err)
	}
	return fb
}

// SeedCensorWord inserts an active censor word with a unique suffix and
// returns the stored word.
func SeedCensorWord(t *testing.T, pool *pgxpool.Pool, prefix string) string {
	t.Helper()

	word := prefix + uuid.New().String()[:8]
	_, err := pool.Exec(context.Background(),
		`INSERT INTO censor_words (word) VALUES ($1)`, word,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCensorWord: %v", err)
	}
	return word
}
