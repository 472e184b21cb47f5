package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/joke"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) GetActiveRound(ctx context.Context, guildID string) (*domain.Session, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockRoundService) ForceEndAll(ctx context.Context, guildID, source string) (int64, error) {
	args := m.Called(ctx, guildID, source)
	return args.Get(0).(int64), args.Error(1)
}

type MockJokeService struct {
	mock.Mock
}

func (m *MockJokeService) AddJoke(ctx context.Context, input joke.AddJokeInput) (*domain.Joke, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}

func (m *MockJokeService) DeleteJoke(ctx context.Context, guildID string, number int) error {
	args := m.Called(ctx, guildID, number)
	return args.Error(0)
}

func (m *MockJokeService) CountJokes(ctx context.Context, guildID string) (int, error) {
	args := m.Called(ctx, guildID)
	return args.Int(0), args.Error(1)
}

// newRouter mounts the handlers on the same paths the server uses
func newRouter(rounds RoundService, jokes JokeService) chi.Router {
	r := chi.NewRouter()
	rh := NewRoundHandler(rounds)
	jh := NewJokeHandler(jokes)
	r.Route("/guilds/{guildID}", func(r chi.Router) {
		r.Get("/round", rh.HandleGetActiveRound)
		r.Post("/round/clear", rh.HandleClearRounds)
		r.Get("/jokes", jh.HandleCountJokes)
		r.Post("/jokes", jh.HandleAddJoke)
		r.Delete("/jokes/{number}", jh.HandleDeleteJoke)
	})
	return r
}
