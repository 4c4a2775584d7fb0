// Command migrate applies or inspects the embedded schema migrations for the
// configured store. The server also migrates on startup; this command exists
// for deployments that run schema changes as a separate step.
//
// Usage:
//
//	migrate [up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/Ren-zee/exploremore/internal/app"
	"github.com/Ren-zee/exploremore/internal/config"
	"github.com/Ren-zee/exploremore/migrations"
)

func main() {
	_ = godotenv.Load()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, dialect, err := openDB(cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(dialect, db)
	if err != nil {
		logger.Error("create migration provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, provider, cmd, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", cmd),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}

func openDB(cfg config.DatabaseConfig) (*sql.DB, goose.Dialect, error) {
	if cfg.Driver == config.DriverSQLite {
		db, err := sql.Open("sqlite", "file:"+cfg.SQLitePath+"?_pragma=foreign_keys(1)")
		return db, goose.DialectSQLite3, err
	}
	db, err := sql.Open("pgx", cfg.DSN)
	return db, goose.DialectPostgres, err
}

func run(ctx context.Context, p *goose.Provider, cmd string, logger *slog.Logger) error {
	switch cmd {
	case "up":
		results, err := p.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	case "down":
		res, err := p.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back", slog.Int64("version", res.Source.Version))
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%5d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", cmd)
	}
	return nil
}
