package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Ren-zee/exploremore/internal/adapter/postgres"
	pgcensorword "github.com/Ren-zee/exploremore/internal/adapter/postgres/censorword"
	pgfeedback "github.com/Ren-zee/exploremore/internal/adapter/postgres/feedback"
	"github.com/Ren-zee/exploremore/internal/adapter/sqlite"
	sqlitecensorword "github.com/Ren-zee/exploremore/internal/adapter/sqlite/censorword"
	sqlitefeedback "github.com/Ren-zee/exploremore/internal/adapter/sqlite/feedback"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/internal/domain"
	"github.com/Ren-zee/exploremore/migrations"
)

type feedbackStore interface {
	Insert(ctx context.Context, nf domain.NewFeedback) (*domain.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) (*domain.Feedback, error)
	List(ctx context.Context, f domain.FeedbackFilter) ([]*domain.Feedback, int, error)
	Stats(ctx context.Context) (domain.FeedbackStats, error)
}

type wordStore interface {
	ActiveWords(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]domain.CensorWord, error)
	Add(ctx context.Context, word string) (*domain.CensorWord, error)
	Remove(ctx context.Context, word string) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// store bundles the repositories of one configured backend.
type store struct {
	feedback feedbackStore
	words    wordStore
	tx       txRunner
	pinger   pinger
	close    func()
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info("store ready", slog.String("driver", cfg.Driver), slog.String("path", cfg.SQLitePath))
		return &store{
			feedback: sqlitefeedback.New(db),
			words:    sqlitecensorword.New(db),
			tx:       sqlite.NewTxManager(db),
			pinger:   sqlPinger{db: db},
			close:    func() { _ = db.Close() },
		}, nil

	default:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := migratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("store ready", slog.String("driver", cfg.Driver),
			slog.Int("max_conns", int(cfg.MaxConns)),
		)
		return &store{
			feedback: pgfeedback.New(pool),
			words:    pgcensorword.New(pool),
			tx:       postgres.NewTxManager(pool),
			pinger:   pool,
			close:    pool.Close,
		}, nil
	}
}

func migratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if _, err := migrations.Up(ctx, goose.DialectPostgres, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }
