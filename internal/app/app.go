package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ren-zee/exploremore/internal/adapter/notify"
	"github.com/Ren-zee/exploremore/internal/censor"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/internal/service/feedback"
	"github.com/Ren-zee/exploremore/internal/service/review"
	"github.com/Ren-zee/exploremore/internal/service/wordlist"
	"github.com/Ren-zee/exploremore/internal/transport/middleware"
	"github.com/Ren-zee/exploremore/internal/transport/rest"
)

const telemetryFlushTimeout = 5 * time.Second

// Run is the application entry point. It loads configuration, opens the
// store, publishes the initial word list and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
	)

	shutdownTelemetry, err := SetupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("flush telemetry", slog.String("error", err.Error()))
		}
	}()

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer st.close()

	filter := censor.NewFilter(nil)
	loader := censor.NewLoader(logger, filter, wordSources(cfg.Censor, st.words)...)
	n, err := loader.Reload(ctx)
	if err != nil {
		return fmt.Errorf("initial word list load: %w", err)
	}
	logger.Info("censor ready", slog.Int("words", n))

	feedbackSvc := feedback.NewService(logger, st.feedback, filter, newNotifier(cfg.Notify, logger), cfg.Feedback)
	defer feedbackSvc.Wait()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	deps := rest.RouterDeps{
		Health:      rest.NewHealthHandler(st.pinger, filter, Version),
		Feedback:    rest.NewFeedbackHandler(feedbackSvc, cfg.Server.MaxBodyBytes, logger),
		Limiter:     limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		ServiceName: cfg.Telemetry.ServiceName,
		Logger:      logger,
	}
	if cfg.Admin.Enabled() {
		deps.AdminKey = cfg.Admin.APIKey
		deps.Review = rest.NewReviewHandler(review.NewService(logger, st.feedback, st.tx), cfg.Server.MaxBodyBytes, logger)
		if cfg.Censor.UseDatabase {
			wordSvc := wordlist.NewService(logger, st.words, loader, filter)
			deps.Censor = rest.NewCensorHandler(wordSvc, cfg.Server.MaxBodyBytes, logger)
		}
	} else {
		logger.Warn("admin api key not set, review endpoints disabled")
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           rest.NewRouter(deps),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return loader.Run(gctx, cfg.Censor.SyncInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// wordSources lists every configured word list source.
func wordSources(cfg config.CensorConfig, words wordStore) []censor.Source {
	var sources []censor.Source
	if inline := cfg.InlineWords(); len(inline) > 0 {
		sources = append(sources, censor.StaticSource(inline))
	}
	if cfg.WordlistPath != "" {
		sources = append(sources, censor.FileSource{Path: cfg.WordlistPath})
	}
	if cfg.WordlistURL != "" {
		sources = append(sources, censor.NewURLSource(cfg.WordlistURL, cfg.FetchTimeout))
	}
	if cfg.UseDatabase {
		sources = append(sources, censor.NewStoreSource(words))
	}
	return sources
}

type submissionNotifier interface {
	FeedbackSubmitted(ctx context.Context, fb domain.Feedback) error
}

func newNotifier(cfg config.NotifyConfig, logger *slog.Logger) submissionNotifier {
	if cfg.ResendAPIKey == "" {
		return notify.NewLog(logger)
	}
	return notify.NewEmail(cfg.ResendAPIKey, cfg.From, cfg.Recipients())
}
