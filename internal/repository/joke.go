package repository

import (
	"context"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// Joke defines data access for a guild's joke catalogue
type Joke interface {
	// AddJoke assigns the next per-guild number and stores the joke.
	AddJoke(ctx context.Context, joke *domain.Joke) error
	// ImportJoke stores the joke unless the guild already has one with the same setup.
	// Returns true if a new joke was inserted.
	ImportJoke(ctx context.Context, joke *domain.Joke) (bool, error)
	// DeleteJoke returns domain.ErrJokeNotFound if no joke has that number.
	DeleteJoke(ctx context.Context, guildID string, number int) error
	// SampleJoke returns one random joke, optionally filtered by category, or nil.
	SampleJoke(ctx context.Context, guildID, category string) (*domain.Joke, error)
	CountJokes(ctx context.Context, guildID string) (int, error)
}
