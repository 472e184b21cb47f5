package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/database/storetest"
)

func TestSQLiteStores(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Stores {
		db, err := Open(context.Background(), filepath.Join(t.TempDir(), "mishka.db"))
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		return storetest.Stores{
			Sessions: NewSessionRepository(db),
			Jokes:    NewJokeRepository(db),
			Guilds:   NewGuildRepository(db),
		}
	})
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mishka.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewGuildRepository(db).SetGuildEnabled(ctx, "g1", true))
	require.NoError(t, db.Close())

	// Migrations are idempotent and data survives
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	s, err := NewGuildRepository(db).GetGuildSettings(ctx, "g1")
	require.NoError(t, err)
	require.True(t, s.Enabled)
}
