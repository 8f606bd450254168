// Package storage opens the relational store, applies schema migrations
// (via goose), and vends the repository implementations matching the
// configured backend.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	pgmigrations "securepay/internal/migrations/postgres"
	litemigrations "securepay/internal/migrations/sqlite"
	"securepay/internal/repositories/transactions"
	"securepay/internal/repositories/users"
)

// Store bundles the open database handle with the repositories bound to it.
type Store struct {
	DB           *sql.DB
	Users        users.Repository
	Transactions transactions.Repository
}

// Open connects to the store described by dsn, runs the embedded migrations,
// and returns the bound repositories. A postgres:// (or postgresql://) DSN
// selects the PostgreSQL backend; anything else is treated as a SQLite file
// path. Any failure here is fatal for the caller; there is no retry.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if isPostgres(dsn) {
		return open(ctx, "pgx", dsn, "pgx", pgmigrations.Migrations, newPostgresRepos)
	}
	return open(ctx, "sqlite", dsn, "sqlite3", litemigrations.Migrations, newSQLiteRepos)
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

type repoFactory func(db *sql.DB) (users.Repository, transactions.Repository)

func newSQLiteRepos(db *sql.DB) (users.Repository, transactions.Repository) {
	return users.NewSQLiteRepository(db), transactions.NewSQLiteRepository(db)
}

func newPostgresRepos(db *sql.DB) (users.Repository, transactions.Repository) {
	return users.NewPostgresRepository(db), transactions.NewPostgresRepository(db)
}

func open(ctx context.Context, driver, dsn, dialect string, migrations fs.FS, repos repoFactory) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := runMigrations(ctx, db, dialect, migrations); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	u, t := repos(db)
	return &Store{DB: db, Users: u, Transactions: t}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string, migrations fs.FS) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
