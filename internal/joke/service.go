package joke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/event"
	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/repository"
)

// AddJokeInput is a joke submitted by a user or an admin endpoint
type AddJokeInput struct {
	GuildID   string `validate:"required,max=32"`
	Setup     string `validate:"required,max=1000"`
	Punchline string `validate:"required,max=1000"`
	Category  string `validate:"omitempty,max=32,excludesall=/\\"`
	AddedBy   string `validate:"max=64"`
}

// ImportResult summarizes an import batch
type ImportResult struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Service manages a guild's joke catalogue
type Service interface {
	// SampleOne picks a random joke, optionally within a category. Returns nil if none match.
	SampleOne(ctx context.Context, guildID, category string) (*domain.Joke, error)
	AddJoke(ctx context.Context, input AddJokeInput) (*domain.Joke, error)
	DeleteJoke(ctx context.Context, guildID string, number int) error
	CountJokes(ctx context.Context, guildID string) (int, error)
	// ImportFromAPI pulls a batch from JokeAPI, skipping setups the guild already has.
	ImportFromAPI(ctx context.Context, guildID, addedBy string) (ImportResult, error)
	// ImportFile loads a YAML joke file, skipping duplicates and invalid rows.
	ImportFile(ctx context.Context, guildID, addedBy string, r io.Reader) (ImportResult, error)
}

type service struct {
	repo     repository.Joke
	fetcher  Fetcher
	eventBus event.Bus
	validate *validator.Validate
	caser    cases.Caser
}

// NewService creates a joke service. fetcher and eventBus may be nil.
func NewService(repo repository.Joke, fetcher Fetcher, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		fetcher:  fetcher,
		eventBus: eventBus,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		caser:    cases.Lower(language.Und),
	}
}

// normalizeCategory lower-cases and trims a category name
func (s *service) normalizeCategory(category string) string {
	return s.caser.String(strings.TrimSpace(category))
}

func (s *service) SampleOne(ctx context.Context, guildID, category string) (*domain.Joke, error) {
	j, err := s.repo.SampleJoke(ctx, guildID, s.normalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSampleJoke, err)
	}
	return j, nil
}

func (s *service) toJoke(input AddJokeInput) (*domain.Joke, error) {
	input.Setup = strings.TrimSpace(input.Setup)
	input.Punchline = strings.TrimSpace(input.Punchline)
	input.Category = s.normalizeCategory(input.Category)
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &domain.Joke{
		GuildID:   input.GuildID,
		Setup:     input.Setup,
		Punchline: input.Punchline,
		Category:  input.Category,
		AddedBy:   input.AddedBy,
	}, nil
}

func (s *service) AddJoke(ctx context.Context, input AddJokeInput) (*domain.Joke, error) {
	j, err := s.toJoke(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddJoke(ctx, j); err != nil {
		if errors.Is(err, domain.ErrJokeExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextAddJoke, err)
	}

	logger.FromContext(ctx).Info(LogMsgJokeAdded, "guild_id", j.GuildID, "joke_number", j.Number, "added_by", j.AddedBy)
	s.publish(ctx, event.NewJokeAddedEvent(j.GuildID, j.Number, SourceManual))
	return j, nil
}

func (s *service) DeleteJoke(ctx context.Context, guildID string, number int) error {
	if number <= 0 {
		return fmt.Errorf("%w: joke number must be positive", domain.ErrInvalidInput)
	}
	if err := s.repo.DeleteJoke(ctx, guildID, number); err != nil {
		if errors.Is(err, domain.ErrJokeNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrContextDeleteJoke, err)
	}
	logger.FromContext(ctx).Info(LogMsgJokeDeleted, "guild_id", guildID, "joke_number", number)
	return nil
}

func (s *service) CountJokes(ctx context.Context, guildID string) (int, error) {
	return s.repo.CountJokes(ctx, guildID)
}

func (s *service) ImportFromAPI(ctx context.Context, guildID, addedBy string) (ImportResult, error) {
	if s.fetcher == nil {
		return ImportResult{}, fmt.Errorf("%s: no joke source configured", ErrContextFetchJokes)
	}
	remote, err := s.fetcher.FetchJokes(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	inputs := make([]AddJokeInput, 0, len(remote))
	for _, r := range remote {
		inputs = append(inputs, AddJokeInput{
			GuildID:   guildID,
			Setup:     r.Setup,
			Punchline: r.Delivery,
			Category:  r.Category,
			AddedBy:   addedBy,
		})
	}
	return s.importAll(ctx, inputs, SourceJokeAPI)
}

func (s *service) ImportFile(ctx context.Context, guildID, addedBy string, r io.Reader) (ImportResult, error) {
	f, err := ParseFile(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	inputs := make([]AddJokeInput, 0, len(f.Jokes))
	for _, j := range f.Jokes {
		inputs = append(inputs, AddJokeInput{
			GuildID:   guildID,
			Setup:     j.Setup,
			Punchline: j.Punchline,
			Category:  j.Category,
			AddedBy:   addedBy,
		})
	}
	return s.importAll(ctx, inputs, SourceFile)
}

func (s *service) importAll(ctx context.Context, inputs []AddJokeInput, source string) (ImportResult, error) {
	log := logger.FromContext(ctx)
	result := ImportResult{Fetched: len(inputs)}

	for i, input := range inputs {
		j, err := s.toJoke(input)
		if err != nil {
			log.Warn(LogMsgSkippedImportRow, "index", i, "error", err)
			result.Skipped++
			continue
		}
		inserted, err := s.repo.ImportJoke(ctx, j)
		if err != nil {
			return result, fmt.Errorf("%s: %w", ErrContextImportJoke, err)
		}
		if !inserted {
			result.Skipped++
			continue
		}
		result.Imported++
		s.publish(ctx, event.NewJokeAddedEvent(j.GuildID, j.Number, source))
	}

	log.Info(LogMsgJokesImported, "source", source, "fetched", result.Fetched, "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(event.LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
