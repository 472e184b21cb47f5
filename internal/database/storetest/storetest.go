// Package storetest holds behavioural tests shared by every repository backend.
package storetest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/repository"
)

// Stores bundles the repositories of one backend
type Stores struct {
	Sessions repository.Session
	Jokes    repository.Joke
	Guilds   repository.Guild
}

// Factory returns fresh, empty stores for a single subtest
type Factory func(t *testing.T) Stores

// Run executes the full contract against the backend produced by newStores
func Run(t *testing.T, newStores Factory) {
	t.Run("Sessions", func(t *testing.T) { runSessions(t, newStores) })
	t.Run("Jokes", func(t *testing.T) { runJokes(t, newStores) })
	t.Run("Guilds", func(t *testing.T) { runGuilds(t, newStores) })
}

func newSession(guildID string) *domain.Session {
	return &domain.Session{
		GuildID:    guildID,
		ChannelID:  "chan-" + guildID,
		StartedBy:  "starter",
		JokeNumber: 1,
		Prompt:     "Why did the scarecrow win an award?",
		Answer:     "Because he was outstanding in his field",
	}
}

func runSessions(t *testing.T, newStores Factory) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newStores(t).Sessions
		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		got, err := s.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStateCollecting, got.State)
		assert.Equal(t, "g1", got.GuildID)
		assert.Equal(t, "Because he was outstanding in his field", got.Answer)
		assert.Nil(t, got.WinnerID)
		assert.Nil(t, got.EndedAt)
	})

	t.Run("get unknown session", func(t *testing.T) {
		s := newStores(t).Sessions
		_, err := s.GetSession(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("one active session per guild", func(t *testing.T) {
		s := newStores(t).Sessions
		_, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)

		_, err = s.CreateSession(ctx, newSession("g1"))
		assert.ErrorIs(t, err, domain.ErrRoundAlreadyActive)

		_, err = s.CreateSession(ctx, newSession("g2"))
		assert.NoError(t, err, "other guilds are independent")
	})

	t.Run("active session lookup", func(t *testing.T) {
		s := newStores(t).Sessions
		active, err := s.GetActiveSession(ctx, "g1")
		require.NoError(t, err)
		assert.Nil(t, active)

		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)
		active, err = s.GetActiveSession(ctx, "g1")
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, id, active.ID)

		ok, err := s.MarkEnded(ctx, id, nil, nil)
		require.NoError(t, err)
		require.True(t, ok)
		active, err = s.GetActiveSession(ctx, "g1")
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("state compare and swap", func(t *testing.T) {
		s := newStores(t).Sessions
		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)

		n, err := s.UpdateSessionStateIfMatches(ctx, id, domain.SessionStateCollecting, domain.SessionStateVoting)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.UpdateSessionStateIfMatches(ctx, id, domain.SessionStateCollecting, domain.SessionStateVoting)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		got, err := s.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStateVoting, got.State)
	})

	t.Run("mark ended records outcome once", func(t *testing.T) {
		s := newStores(t).Sessions
		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)

		winner := "user-1"
		entries := []domain.FunnyEntry{{AuthorID: "user-2", Text: "because crows", VoteCount: 3}}
		ok, err := s.MarkEnded(ctx, id, &winner, entries)
		require.NoError(t, err)
		assert.True(t, ok)

		other := "user-9"
		ok, err = s.MarkEnded(ctx, id, &other, nil)
		require.NoError(t, err)
		assert.False(t, ok, "second end must be a no-op")

		got, err := s.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStateEnded, got.State)
		require.NotNil(t, got.WinnerID)
		assert.Equal(t, "user-1", *got.WinnerID)
		assert.Equal(t, entries, got.FunniestEntries)
		assert.NotNil(t, got.EndedAt)
	})

	t.Run("concurrent mark ended has a single winner", func(t *testing.T) {
		s := newStores(t).Sessions
		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := s.MarkEnded(ctx, id, nil, nil)
				if err == nil && ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("force end all", func(t *testing.T) {
		s := newStores(t).Sessions
		id, err := s.CreateSession(ctx, newSession("g1"))
		require.NoError(t, err)
		otherID, err := s.CreateSession(ctx, newSession("g2"))
		require.NoError(t, err)

		n, err := s.ForceEndAll(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.ForceEndAll(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		got, err := s.GetSession(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.IsEnded())
		assert.Nil(t, got.WinnerID)

		ok, err := s.MarkEnded(ctx, id, nil, nil)
		require.NoError(t, err)
		assert.False(t, ok, "force-ended session cannot be finalized")

		other, err := s.GetSession(ctx, otherID)
		require.NoError(t, err)
		assert.False(t, other.IsEnded())

		_, err = s.CreateSession(ctx, newSession("g1"))
		assert.NoError(t, err, "a new round can start after clearing")
	})

	t.Run("end stale sessions", func(t *testing.T) {
		s := newStores(t).Sessions
		old := newSession("g1")
		old.CreatedAt = time.Now().Add(-time.Hour).UTC()
		oldID, err := s.CreateSession(ctx, old)
		require.NoError(t, err)
		freshID, err := s.CreateSession(ctx, newSession("g2"))
		require.NoError(t, err)

		n, err := s.EndStaleSessions(ctx, time.Now().Add(-10*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := s.GetSession(ctx, oldID)
		require.NoError(t, err)
		assert.True(t, got.IsEnded())
		got, err = s.GetSession(ctx, freshID)
		require.NoError(t, err)
		assert.False(t, got.IsEnded())
	})
}

func runJokes(t *testing.T, newStores Factory) {
	ctx := context.Background()

	t.Run("numbers are assigned per guild", func(t *testing.T) {
		j := newStores(t).Jokes
		a := &domain.Joke{GuildID: "g1", Setup: "setup a", Punchline: "punch a"}
		b := &domain.Joke{GuildID: "g1", Setup: "setup b", Punchline: "punch b"}
		c := &domain.Joke{GuildID: "g2", Setup: "setup a", Punchline: "punch a"}
		require.NoError(t, j.AddJoke(ctx, a))
		require.NoError(t, j.AddJoke(ctx, b))
		require.NoError(t, j.AddJoke(ctx, c))
		assert.Equal(t, 1, a.Number)
		assert.Equal(t, 2, b.Number)
		assert.Equal(t, 1, c.Number)

		n, err := j.CountJokes(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("duplicate setup", func(t *testing.T) {
		j := newStores(t).Jokes
		require.NoError(t, j.AddJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "same", Punchline: "p"}))
		err := j.AddJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "same", Punchline: "q"})
		assert.ErrorIs(t, err, domain.ErrJokeExists)

		inserted, err := j.ImportJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "same", Punchline: "r"})
		require.NoError(t, err)
		assert.False(t, inserted)

		inserted, err = j.ImportJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "new", Punchline: "r"})
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("delete", func(t *testing.T) {
		j := newStores(t).Jokes
		joke := &domain.Joke{GuildID: "g1", Setup: "s", Punchline: "p"}
		require.NoError(t, j.AddJoke(ctx, joke))
		require.NoError(t, j.DeleteJoke(ctx, "g1", joke.Number))
		assert.ErrorIs(t, j.DeleteJoke(ctx, "g1", joke.Number), domain.ErrJokeNotFound)
	})

	t.Run("sample", func(t *testing.T) {
		j := newStores(t).Jokes
		got, err := j.SampleJoke(ctx, "g1", "")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, j.AddJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "pun setup", Punchline: "p", Category: "pun"}))
		require.NoError(t, j.AddJoke(ctx, &domain.Joke{GuildID: "g1", Setup: "dark setup", Punchline: "p", Category: "dark"}))

		got, err = j.SampleJoke(ctx, "g1", "pun")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "pun setup", got.Setup)

		got, err = j.SampleJoke(ctx, "g1", "spooky")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = j.SampleJoke(ctx, "g1", "")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}

func runGuilds(t *testing.T, newStores Factory) {
	ctx := context.Background()

	t.Run("defaults for unknown guild", func(t *testing.T) {
		g := newStores(t).Guilds
		s, err := g.GetGuildSettings(ctx, "g1")
		require.NoError(t, err)
		assert.False(t, s.Enabled)
		assert.Empty(t, s.AdminIDs)
	})

	t.Run("enable and admins", func(t *testing.T) {
		g := newStores(t).Guilds
		require.NoError(t, g.SetGuildEnabled(ctx, "g1", true))
		require.NoError(t, g.AddGuildAdmin(ctx, "g1", "u1"))
		require.NoError(t, g.AddGuildAdmin(ctx, "g1", "u1"))
		require.NoError(t, g.AddGuildAdmin(ctx, "g1", "u2"))

		s, err := g.GetGuildSettings(ctx, "g1")
		require.NoError(t, err)
		assert.True(t, s.Enabled)
		assert.Equal(t, []string{"u1", "u2"}, s.AdminIDs)

		require.NoError(t, g.RemoveGuildAdmin(ctx, "g1", "u1"))
		require.NoError(t, g.SetGuildEnabled(ctx, "g1", false))
		s, err = g.GetGuildSettings(ctx, "g1")
		require.NoError(t, err)
		assert.False(t, s.Enabled)
		assert.Equal(t, []string{"u2"}, s.AdminIDs)
	})

	t.Run("admin added before enable", func(t *testing.T) {
		g := newStores(t).Guilds
		require.NoError(t, g.AddGuildAdmin(ctx, "g1", "u1"))
		s, err := g.GetGuildSettings(ctx, "g1")
		require.NoError(t, err)
		assert.False(t, s.Enabled)
		assert.True(t, s.IsAdmin("u1"))
	})
}
