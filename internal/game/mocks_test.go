package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// MockSessionRepo is a testify mock of repository.Session
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) CreateSession(ctx context.Context, session *domain.Session) (uuid.UUID, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionRepo) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) GetActiveSession(ctx context.Context, guildID string) (*domain.Session, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) UpdateSessionStateIfMatches(ctx context.Context, id uuid.UUID, expected, next domain.SessionState) (int64, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepo) MarkEnded(ctx context.Context, id uuid.UUID, winnerID *string, entries []domain.FunnyEntry) (bool, error) {
	args := m.Called(ctx, id, winnerID, entries)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepo) ForceEndAll(ctx context.Context, guildID string) (int64, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepo) EndStaleSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockCorpus is a testify mock of Corpus
type MockCorpus struct {
	mock.Mock
}

func (m *MockCorpus) SampleOne(ctx context.Context, guildID, category string) (*domain.Joke, error) {
	args := m.Called(ctx, guildID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Joke), args.Error(1)
}

// MockGuildPolicy is a testify mock of GuildPolicy
type MockGuildPolicy struct {
	mock.Mock
}

func (m *MockGuildPolicy) IsEnabled(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func uuidNil() uuid.UUID { return uuid.Nil }
