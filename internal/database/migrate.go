package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/MishkaBot_Go/internal/database/migrations"
)

// Migrator applies the embedded goose migrations for one dialect
type Migrator struct {
	provider *goose.Provider
}

// NewPostgresMigrator wraps the pool in a database/sql handle for goose
func NewPostgresMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	return newMigrator(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations.Postgres, "postgres")
}

// NewSQLiteMigrator migrates an already opened SQLite handle
func NewSQLiteMigrator(db *sql.DB) (*Migrator, error) {
	return newMigrator(goose.DialectSQLite3, db, migrations.SQLite, "sqlite")
}

func newMigrator(dialect goose.Dialect, db *sql.DB, fsys fs.FS, dir string) (*Migrator, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return &Migrator{provider: provider}, nil
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		slog.Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	return nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	slog.Info(LogMsgMigrationRolledBack, "version", r.Source.Version, "path", r.Source.Path)
	return nil
}

// MigrationStatus is one line of Status output
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// Status reports every known migration and whether it has been applied
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
