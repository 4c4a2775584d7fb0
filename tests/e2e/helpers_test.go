//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Ren-zee/exploremore/internal/adapter/notify"
	"github.com/Ren-zee/exploremore/internal/adapter/postgres"
	"github.com/Ren-zee/exploremore/internal/adapter/postgres/censorword"
	feedbackrepo "github.com/Ren-zee/exploremore/internal/adapter/postgres/feedback"
	"github.com/Ren-zee/exploremore/internal/adapter/postgres/testhelper"
	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/service/feedback"
	"github.com/Ren-zee/exploremore/internal/service/review"
	"github.com/Ren-zee/exploremore/internal/service/wordlist"
	"github.com/Ren-zee/exploremore/internal/transport/middleware"
	"github.com/Ren-zee/exploremore/internal/transport/rest"
)

const adminKey = "e2e-admin-key-0123456789"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Filter *censor.Filter
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). The censor starts with
// "heck" and "darn" plus whatever is active in censor_words.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	feedbacks := feedbackrepo.New(pool)
	words := censorword.New(pool)
	tx := postgres.NewTxManager(pool)

	filter := censor.NewFilter(nil)
	loader := censor.NewLoader(logger, filter,
		censor.StaticSource([]string{"heck", "darn"}),
		censor.NewStoreSource(words),
	)
	_, err := loader.Reload(context.Background())
	require.NoError(t, err)

	feedbackSvc := feedback.NewService(logger, feedbacks, filter, notify.NewLog(logger), config.FeedbackConfig{
		MaxTextLength:   5000,
		MaxUserIDLength: 255,
		StoreTimeout:    5 * time.Second,
		PublicListLimit: 50,
	})
	t.Cleanup(feedbackSvc.Wait)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, filter, "e2e"),
		Feedback: rest.NewFeedbackHandler(feedbackSvc, 1<<16, logger),
		Review:   rest.NewReviewHandler(review.NewService(logger, feedbacks, tx), 1<<16, logger),
		Censor:   rest.NewCensorHandler(wordlist.NewService(logger, words, loader, filter), 1<<16, logger),
		Limiter:  limiter,
		AdminKey: adminKey,
		CORS:     config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,DELETE", AllowedHeaders: "Content-Type"},
		Logger:   logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Filter: filter,
	}
}

// do sends a JSON request and decodes the JSON response into a map.
// admin adds the API key header.
func (ts *testServer) do(t *testing.T, method, path string, body any, admin bool) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(middleware.AdminKeyHeader, adminKey)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.ContentLength != 0 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

// submit posts feedback and returns the acknowledged record.
func (ts *testServer) submit(t *testing.T, userID, text string) map[string]any {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/submit-feedback", map[string]any{
		"user_id":  userID,
		"feedback": text,
	}, false)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	fb, ok := body["feedback"].(map[string]any)
	require.True(t, ok, "expected feedback object in response")
	return fb
}
