package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/MishkaBot_Go/internal/database"
	"github.com/osse101/MishkaBot_Go/internal/database/storetest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupIntegrationDB(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupIntegrationDB(ctx context.Context) func() {
	// testcontainers panics when docker is missing
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupIntegrationDB: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{ConnString: connStr, MaxConns: 10, MaxConnIdleTime: time.Minute, MaxConnLifetime: 5 * time.Minute})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}
	migrator, err := database.NewPostgresMigrator(pool)
	if err == nil {
		err = migrator.Up(ctx)
	}
	if err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return terminate
}

func TestPostgresStores(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}

	storetest.Run(t, func(t *testing.T) storetest.Stores {
		_, err := testPool.Exec(context.Background(), `TRUNCATE joke_sessions, jokes, guild_settings`)
		require.NoError(t, err)
		return storetest.Stores{
			Sessions: NewSessionRepository(testPool),
			Jokes:    NewJokeRepository(testPool),
			Guilds:   NewGuildRepository(testPool),
		}
	})
}
