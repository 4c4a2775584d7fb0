// Package migrations holds goose SQL migrations for every supported store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// FS contains the postgres/ and sqlite/ migration directories.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// NewProvider returns a goose provider for the migrations of dialect.
// Only goose.DialectPostgres and goose.DialectSQLite3 are shipped.
func NewProvider(dialect goose.Dialect, db *sql.DB) (*goose.Provider, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = "postgres"
	case goose.DialectSQLite3:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}

	sub, err := fs.Sub(FS, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return goose.NewProvider(dialect, db, sub)
}

// Up applies all pending migrations and returns how many ran.
func Up(ctx context.Context, dialect goose.Dialect, db *sql.DB) (int, error) {
	p, err := NewProvider(dialect, db)
	if err != nil {
		return 0, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
