package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MishkaBot_Go/internal/config"
	"github.com/osse101/MishkaBot_Go/internal/database"
	"github.com/osse101/MishkaBot_Go/internal/database/postgres"
	"github.com/osse101/MishkaBot_Go/internal/database/sqlite"
	"github.com/osse101/MishkaBot_Go/internal/repository"
)

// Repositories holds the repository implementations for the configured driver,
// plus the handle they share. It satisfies database.Pool for readiness checks.
type Repositories struct {
	Sessions repository.Session
	Jokes    repository.Joke
	Guilds   repository.Guild
	Migrator *database.Migrator

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks the underlying connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

// Close releases the underlying connection
func (r *Repositories) Close() {
	r.close()
}

// InitializeRepositories connects to the store named by cfg.DBDriver.
// When migrate is set, pending migrations are applied before returning.
func InitializeRepositories(ctx context.Context, cfg *config.Config, migrate bool) (*Repositories, error) {
	var (
		repos *Repositories
		err   error
	)
	switch cfg.DBDriver {
	case config.DBDriverPostgres:
		repos, err = postgresRepositories(ctx, cfg)
	case config.DBDriverSQLite:
		repos, err = sqliteRepositories(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectStore, err)
	}

	if migrate {
		if err := repos.Migrator.Up(ctx); err != nil {
			repos.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
	}

	slog.Info(LogMsgStoreInitialized, "driver", cfg.DBDriver)
	return repos, nil
}

func postgresRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: DBMaxConnIdleTime,
		MaxConnLifetime: DBMaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	migrator, err := database.NewPostgresMigrator(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return newPostgresRepositories(pool, migrator), nil
}

func newPostgresRepositories(pool *pgxpool.Pool, migrator *database.Migrator) *Repositories {
	return &Repositories{
		Sessions: postgres.NewSessionRepository(pool),
		Jokes:    postgres.NewJokeRepository(pool),
		Guilds:   postgres.NewGuildRepository(pool),
		Migrator: migrator,
		ping:     pool.Ping,
		close:    pool.Close,
	}
}

func sqliteRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
		return nil, err
	}
	db, err := sqlite.Connect(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	migrator, err := database.NewSQLiteMigrator(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return newSQLiteRepositories(db, migrator), nil
}

func newSQLiteRepositories(db *sql.DB, migrator *database.Migrator) *Repositories {
	return &Repositories{
		Sessions: sqlite.NewSessionRepository(db),
		Jokes:    sqlite.NewJokeRepository(db),
		Guilds:   sqlite.NewGuildRepository(db),
		Migrator: migrator,
		ping:     db.PingContext,
		close:    func() { _ = db.Close() },
	}
}
