package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

const sessionColumns = `session_id, guild_id, channel_id, started_by, joke_number, prompt, answer,
	state, winner_id, funniest_entries, created_at, ended_at`

// SessionRepository implements repository.Session for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a new collecting session.
// The partial unique index on guild_id rejects a second active round.
func (r *SessionRepository) CreateSession(ctx context.Context, session *domain.Session) (uuid.UUID, error) {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.State == "" {
		session.State = domain.SessionStateCollecting
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO joke_sessions (session_id, guild_id, channel_id, started_by, joke_number, prompt, answer, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		session.ID, session.GuildID, session.ChannelID, session.StartedBy, session.JokeNumber,
		session.Prompt, session.Answer, string(session.State), session.CreatedAt,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == IndexJokeSessionsOneActive {
			return uuid.Nil, domain.ErrRoundAlreadyActive
		}
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session.ID, nil
}

// GetSession retrieves a session by ID
func (r *SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM joke_sessions WHERE session_id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetActiveSession returns the guild's non-ended session or nil
func (r *SessionRepository) GetActiveSession(ctx context.Context, guildID string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM joke_sessions
		WHERE guild_id = $1 AND state <> 'ended'
		ORDER BY created_at DESC LIMIT 1`, guildID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return s, nil
}

// UpdateSessionStateIfMatches performs a compare-and-swap operation on session state
// Returns the number of rows affected (0 if state didn't match, 1 if updated)
func (r *SessionRepository) UpdateSessionStateIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.SessionState) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE joke_sessions SET state = $1 WHERE session_id = $2 AND state = $3`,
		string(next), id, string(expected))
	if err != nil {
		return 0, fmt.Errorf("failed to update session state: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkEnded ends a session unless it has already been ended
func (r *SessionRepository) MarkEnded(ctx context.Context, id uuid.UUID, winnerID *string, entries []domain.FunnyEntry) (bool, error) {
	if entries == nil {
		entries = []domain.FunnyEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("failed to marshal funniest entries: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE joke_sessions
		SET state = 'ended', winner_id = $2, funniest_entries = $3, ended_at = NOW()
		WHERE session_id = $1 AND state <> 'ended'`,
		id, winnerID, entriesJSON,
	)
	if err != nil {
		return false, fmt.Errorf("failed to end session: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ForceEndAll ends every active session in the guild without a winner
func (r *SessionRepository) ForceEndAll(ctx context.Context, guildID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE joke_sessions SET state = 'ended', ended_at = NOW()
		WHERE guild_id = $1 AND state <> 'ended'`, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to force end sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// EndStaleSessions ends active sessions created before olderThan
func (r *SessionRepository) EndStaleSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE joke_sessions SET state = 'ended', ended_at = NOW()
		WHERE state <> 'ended' AND created_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to end stale sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var (
		s        domain.Session
		state    string
		winnerID pgtype.Text
		entries  []byte
		endedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&s.ID, &s.GuildID, &s.ChannelID, &s.StartedBy, &s.JokeNumber, &s.Prompt, &s.Answer,
		&state, &winnerID, &entries, &s.CreatedAt, &endedAt); err != nil {
		return nil, err
	}
	s.State = domain.SessionState(state)
	s.WinnerID = ptrString(winnerID)
	s.EndedAt = ptrTime(endedAt)
	if len(entries) > 0 {
		if err := json.Unmarshal(entries, &s.FunniestEntries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal funniest entries: %w", err)
		}
	}
	return &s, nil
}
