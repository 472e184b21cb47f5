package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// JokeRepository implements repository.Joke on SQLite
type JokeRepository struct {
	db *sql.DB
}

func NewJokeRepository(db *sql.DB) *JokeRepository {
	return &JokeRepository{db: db}
}

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

func (r *JokeRepository) ImportJoke(ctx context.Context, joke *domain.Joke) (bool, error) {
	return r.insertJoke(ctx, joke, true)
}

func (r *JokeRepository) insertJoke(ctx context.Context, joke *domain.Joke, skipDuplicate bool) (bool, error) {
	if joke.CreatedAt.IsZero() {
		joke.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO jokes (guild_id, joke_number, setup, punchline, category, added_by, created_at)
		SELECT ?1, COALESCE(MAX(joke_number), 0) + 1, ?2, ?3, ?4, ?5, ?6 FROM jokes WHERE guild_id = ?1`
	if skipDuplicate {
		query += ` ON CONFLICT (guild_id, setup) DO NOTHING`
	}
	query += ` RETURNING joke_number`

	err := r.db.QueryRowContext(ctx, query,
		joke.GuildID, joke.Setup, joke.Punchline, joke.Category, joke.AddedBy, toMillis(joke.CreatedAt)).
		Scan(&joke.Number)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows), isUniqueViolation(err):
		return false, nil
	default:
		return false, fmt.Errorf("failed to insert joke: %w", err)
	}
}

func (r *JokeRepository) DeleteJoke(ctx context.Context, guildID string, number int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jokes WHERE guild_id = ? AND joke_number = ?`, guildID, number)
	if err != nil {
		return fmt.Errorf("failed to delete joke: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrJokeNotFound
	}
	return nil
}

func (r *JokeRepository) SampleJoke(ctx context.Context, guildID, category string) (*domain.Joke, error) {
	var (
		j         domain.Joke
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT guild_id, joke_number, setup, punchline, category, added_by, created_at
		FROM jokes
		WHERE guild_id = ?1 AND (?2 = '' OR category = ?2)
		ORDER BY random() LIMIT 1`, guildID, category).
		Scan(&j.GuildID, &j.Number, &j.Setup, &j.Punchline, &j.Category, &j.AddedBy, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to sample joke: %w", err)
	}
	j.CreatedAt = fromMillis(createdAt)
	return &j, nil
}

func (r *JokeRepository) CountJokes(ctx context.Context, guildID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jokes WHERE guild_id = ?`, guildID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jokes: %w", err)
	}
	return n, nil
}
