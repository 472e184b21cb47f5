package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// JokeRepository implements repository.Joke for PostgreSQL
type JokeRepository struct {
	db *pgxpool.Pool
}

// NewJokeRepository creates a new JokeRepository
func NewJokeRepository(db *pgxpool.Pool) *JokeRepository {
	return &JokeRepository{db: db}
}

// AddJoke stores the joke under the next free per-guild number
func (r *JokeRepository) AddJoke(ctx context.Context, joke *domain.Joke) error {
	inserted, err := r.insertJoke(ctx, joke, false)
	if err != nil {
		return err
	}
	if !inserted {
		return domain.ErrJokeExists
	}
	return nil
}

// ImportJoke stores the joke unless one with the same setup exists
func (r *JokeRepository) ImportJoke(ctx context.Context, joke *domain.Joke) (bool, error) {
	return r.insertJoke(ctx, joke, true)
}

// insertJoke computes the next number inside the INSERT; concurrent inserts that
// collide on the primary key are retried with a fresh number.
func (r *JokeRepository) insertJoke(ctx context.Context, joke *domain.Joke, skipDuplicate bool) (bool, error) {
	query := `
		INSERT INTO jokes (guild_id, joke_number, setup, punchline, category, added_by)
		SELECT $1::text, COALESCE(MAX(joke_number), 0) + 1, $2::text, $3::text, $4::text, $5::text FROM jokes WHERE guild_id = $1`
	if skipDuplicate {
		query += ` ON CONFLICT ON CONSTRAINT ` + ConstraintJokesGuildSetup + ` DO NOTHING`
	}
	query += ` RETURNING joke_number, created_at`

	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		err := r.db.QueryRow(ctx, query, joke.GuildID, joke.Setup, joke.Punchline, joke.Category, joke.AddedBy).
			Scan(&joke.Number, &joke.CreatedAt)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, pgx.ErrNoRows) {
			// ON CONFLICT DO NOTHING skipped the row
			return false, nil
		}
		constraint, ok := uniqueViolation(err)
		switch {
		case ok && constraint == ConstraintJokesPkey:
			continue
		case ok && constraint == ConstraintJokesGuildSetup:
			return false, nil
		default:
			return false, fmt.Errorf("failed to insert joke: %w", err)
		}
	}
	return false, fmt.Errorf("failed to insert joke: number allocation kept colliding")
}

// DeleteJoke removes a joke by its per-guild number
func (r *JokeRepository) DeleteJoke(ctx context.Context, guildID string, number int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jokes WHERE guild_id = $1 AND joke_number = $2`, guildID, number)
	if err != nil {
		return fmt.Errorf("failed to delete joke: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrJokeNotFound
	}
	return nil
}

// SampleJoke returns a random joke for the guild, or nil when none match
func (r *JokeRepository) SampleJoke(ctx context.Context, guildID, category string) (*domain.Joke, error) {
	var j domain.Joke
	err := r.db.QueryRow(ctx, `
		SELECT guild_id, joke_number, setup, punchline, category, added_by, created_at
		FROM jokes
		WHERE guild_id = $1 AND ($2 = '' OR category = $2)
		ORDER BY random() LIMIT 1`, guildID, category).
		Scan(&j.GuildID, &j.Number, &j.Setup, &j.Punchline, &j.Category, &j.AddedBy, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to sample joke: %w", err)
	}
	return &j, nil
}

// CountJokes returns how many jokes the guild has
func (r *JokeRepository) CountJokes(ctx context.Context, guildID string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jokes WHERE guild_id = $1`, guildID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	return n, nil
}
