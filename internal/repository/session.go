package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// Session defines the persistence contract for joke rounds.
// Every write that ends a session is conditional on the session not being ended yet.
type Session interface {
	// CreateSession stores a new collecting session and returns its assigned ID.
	// Returns domain.ErrRoundAlreadyActive if the guild already has a non-ended session.
	CreateSession(ctx context.Context, session *domain.Session) (uuid.UUID, error)
	// GetSession returns domain.ErrSessionNotFound if no such session exists.
	GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// GetActiveSession returns the guild's non-ended session, or nil if there is none.
	GetActiveSession(ctx context.Context, guildID string) (*domain.Session, error)
	// UpdateSessionStateIfMatches performs a compare-and-swap on the state column.
	// Returns the number of rows affected (0 if the state didn't match).
	UpdateSessionStateIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.SessionState) (int64, error)
	// MarkEnded ends the session, recording the winner and funniest entries.
	// Returns false without writing anything if the session was already ended.
	MarkEnded(ctx context.Context, id uuid.UUID, winnerID *string, entries []domain.FunnyEntry) (bool, error)
	// ForceEndAll ends every non-ended session in the guild and returns how many it ended.
	ForceEndAll(ctx context.Context, guildID string) (int64, error)
	// EndStaleSessions ends non-ended sessions created before olderThan.
	EndStaleSessions(ctx context.Context, olderThan time.Time) (int64, error)
}
