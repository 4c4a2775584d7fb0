package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ren-zee/exploremore/internal/adapter/sqlite"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('feedback', 'censor_words')`,
	).Scan(&n))
	assert.Equal(t, 2, n)

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := sqlite.Open(context.Background(), " ")
	assert.Error(t, err)
}

func TestTimeFormat_SortsLexically(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, 1, 2, 3, 4, 5, 100, time.UTC)
	b := a.Add(time.Microsecond)
	assert.Less(t, sqlite.FormatTime(a), sqlite.FormatTime(b))

	parsed, err := sqlite.ParseTime(sqlite.FormatTime(a))
	require.NoError(t, err)
	assert.True(t, a.Equal(parsed))
}
