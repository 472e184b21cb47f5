package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

const sessionColumns = `session_id, guild_id, channel_id, started_by, joke_number, prompt, answer,
	state, winner_id, funniest_entries, created_at, ended_at`

// SessionRepository implements repository.Session on SQLite
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

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

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO joke_sessions (session_id, guild_id, channel_id, started_by, joke_number, prompt, answer, state, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID.String(), session.GuildID, session.ChannelID, session.StartedBy, session.JokeNumber,
		session.Prompt, session.Answer, string(session.State), toMillis(session.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.ErrRoundAlreadyActive
		}
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session.ID, nil
}

func (r *SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM joke_sessions WHERE session_id = ?`, id.String())
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) GetActiveSession(ctx context.Context, guildID string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM joke_sessions
		WHERE guild_id = ? AND state <> 'ended'
		ORDER BY created_at DESC LIMIT 1`, guildID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) UpdateSessionStateIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.SessionState) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE joke_sessions SET state = ? WHERE session_id = ? AND state = ?`,
		string(next), id.String(), string(expected))
	if err != nil {
		return 0, fmt.Errorf("failed to update session state: %w", err)
	}
	return res.RowsAffected()
}

func (r *SessionRepository) MarkEnded(ctx context.Context, id uuid.UUID, winnerID *string, entries []domain.FunnyEntry) (bool, error) {
	if entries == nil {
		entries = []domain.FunnyEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("failed to marshal funniest entries: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE joke_sessions
		SET state = 'ended', winner_id = ?, funniest_entries = ?, ended_at = ?
		WHERE session_id = ? AND state <> 'ended'`,
		winnerID, string(entriesJSON), toMillis(time.Now()), id.String(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to end session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SessionRepository) ForceEndAll(ctx context.Context, guildID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE joke_sessions SET state = 'ended', ended_at = ?
		WHERE guild_id = ? AND state <> 'ended'`, toMillis(time.Now()), guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to force end sessions: %w", err)
	}
	return res.RowsAffected()
}

func (r *SessionRepository) EndStaleSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE joke_sessions SET state = 'ended', ended_at = ?
		WHERE state <> 'ended' AND created_at < ?`, toMillis(time.Now()), toMillis(olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to end stale sessions: %w", err)
	}
	return res.RowsAffected()
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var (
		s         domain.Session
		id        string
		state     string
		winnerID  sql.NullString
		entries   string
		createdAt int64
		endedAt   sql.NullInt64
	)
	if err := row.Scan(&id, &s.GuildID, &s.ChannelID, &s.StartedBy, &s.JokeNumber, &s.Prompt, &s.Answer,
		&state, &winnerID, &entries, &createdAt, &endedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", id, err)
	}
	s.ID = parsed
	s.State = domain.SessionState(state)
	s.CreatedAt = fromMillis(createdAt)
	if winnerID.Valid {
		w := winnerID.String
		s.WinnerID = &w
	}
	if endedAt.Valid {
		t := fromMillis(endedAt.Int64)
		s.EndedAt = &t
	}
	if entries != "" {
		if err := json.Unmarshal([]byte(entries), &s.FunniestEntries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal funniest entries: %w", err)
		}
	}
	if len(s.FunniestEntries) == 0 {
		s.FunniestEntries = nil
	}
	return &s, nil
}
