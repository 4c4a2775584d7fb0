package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ren-zee/exploremore/internal/adapter/notify"
	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/domain"
)

func TestSetupTelemetry_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := SetupTelemetry(context.Background(), config.TelemetryConfig{})

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestOpenStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "feedback.db"),
	}

	st, err := openStore(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(st.close)

	require.NoError(t, st.pinger.Ping(ctx))

	fb, err := st.feedback.Insert(ctx, domain.NewFeedback{UserID: "u1", Text: "hi", FilteredText: "hi"})
	require.NoError(t, err)
	assert.False(t, fb.IsVerified)

	_, err = st.words.Add(ctx, "heck")
	require.NoError(t, err)
	words, err := st.words.ActiveWords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"heck"}, words)
}

func TestWordSources(t *testing.T) {
	cfg := config.CensorConfig{
		Words:        "heck, darn",
		WordlistPath: "words.txt",
		WordlistURL:  "https://example.com/words.txt",
		UseDatabase:  true,
	}

	sources := wordSources(cfg, nil)

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"static", "file:words.txt", "url:https://example.com/words.txt", "db"}, names)
}

func TestWordSources_Empty(t *testing.T) {
	assert.Empty(t, wordSources(config.CensorConfig{}, nil))
}

func TestNewNotifier(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, isLog := newNotifier(config.NotifyConfig{}, logger).(*notify.LogNotifier)
	assert.True(t, isLog)

	_, isEmail := newNotifier(config.NotifyConfig{ResendAPIKey: "re_test", From: "a@b.c", To: "d@e.f"}, logger).(*notify.EmailNotifier)
	assert.True(t, isEmail)
}

func TestImportWordFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# seed\nheck\nDarn\n\n!!!\n"), 0o600))

	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(dir, "feedback.db"),
	}}

	res, err := ImportWordFile(context.Background(), cfg, slog.New(slog.DiscardHandler), path)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, []string{"!!!"}, res.Skipped)

	st, err := openStore(context.Background(), cfg.Database, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer st.close()

	filter := censor.NewFilter(nil)
	_, err = censor.NewLoader(slog.New(slog.DiscardHandler), filter, censor.NewStoreSource(st.words)).Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "**** and ****", filter.Censor("heck and darn"))
}
