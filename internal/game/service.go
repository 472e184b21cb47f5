package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/concurrency"
	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/event"
	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/repository"
)

// ErrShuttingDown is returned by StartRound once Shutdown has begun
var ErrShuttingDown = errors.New("game service is shutting down")

// Service runs joke rounds
type Service interface {
	// StartRound creates a round in scope and plays it in the background.
	StartRound(ctx context.Context, scope domain.Scope, startedBy, category string) (*domain.Session, error)
	// ForceEndAll ends every active round in the guild. source is recorded on the event.
	ForceEndAll(ctx context.Context, guildID, source string) (int64, error)
	GetActiveRound(ctx context.Context, guildID string) (*domain.Session, error)
	// EndStaleRounds ends rounds that have been active longer than maxAge.
	EndStaleRounds(ctx context.Context, maxAge time.Duration) (int64, error)
	Shutdown(ctx context.Context) error
}

// Config holds round timings and the vote policy
type Config struct {
	GuessTimeout time.Duration
	VoteDelay    time.Duration
	VoteTimeout  time.Duration
	// VoteWithoutWinner opens a vote on the candidates even when nobody guessed the answer
	VoteWithoutWinner bool
}

// DefaultConfig returns the standard 60s guess / 1s delay / 15s vote timings
func DefaultConfig() Config {
	return Config{
		GuessTimeout: DefaultGuessTimeout,
		VoteDelay:    DefaultVoteDelay,
		VoteTimeout:  DefaultVoteTimeout,
	}
}

type service struct {
	sessions  repository.Session
	corpus    Corpus
	messages  MessageChannel
	reactions ReactionChannel
	guilds    GuildPolicy
	eventBus  event.Bus
	locks     *concurrency.LockManager
	cfg       Config

	baseCtx context.Context
	cancel  context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup // Tracks round goroutines for graceful shutdown
}

// NewService creates a new game service. guilds and eventBus may be nil.
func NewService(sessions repository.Session, corpus Corpus, messages MessageChannel, reactions ReactionChannel, guilds GuildPolicy, eventBus event.Bus, cfg Config) Service {
	return newService(sessions, corpus, messages, reactions, guilds, eventBus, cfg)
}

func newService(sessions repository.Session, corpus Corpus, messages MessageChannel, reactions ReactionChannel, guilds GuildPolicy, eventBus event.Bus, cfg Config) *service {
	ctx, cancel := context.WithCancel(context.Background())
	return &service{
		sessions:  sessions,
		corpus:    corpus,
		messages:  messages,
		reactions: reactions,
		guilds:    guilds,
		eventBus:  eventBus,
		locks:     concurrency.NewLockManager(),
		cfg:       cfg,
		baseCtx:   ctx,
		cancel:    cancel,
	}
}

// StartRound checks the guild, samples a joke and creates the session.
// The check-then-create step is serialized per guild.
func (s *service) StartRound(ctx context.Context, scope domain.Scope, startedBy, category string) (*domain.Session, error) {
	log := logger.FromContext(ctx)

	if s.guilds != nil {
		enabled, err := s.guilds.IsEnabled(ctx, scope.GuildID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextCheckGuild, err)
		}
		if !enabled {
			return nil, domain.ErrGuildDisabled
		}
	}

	unlock := s.locks.Lock(scope.GuildID)
	defer unlock()

	active, err := s.sessions.GetActiveSession(ctx, scope.GuildID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextActiveSession, err)
	}
	if active != nil {
		return nil, domain.ErrRoundAlreadyActive
	}

	joke, err := s.corpus.SampleOne(ctx, scope.GuildID, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSampleJoke, err)
	}
	if joke == nil {
		return nil, domain.ErrNoJokesAvailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrShuttingDown
	}

	session := &domain.Session{
		GuildID:    scope.GuildID,
		ChannelID:  scope.ChannelID,
		StartedBy:  startedBy,
		JokeNumber: joke.Number,
		Prompt:     joke.Setup,
		Answer:     joke.Punchline,
		State:      domain.SessionStateCollecting,
		CreatedAt:  time.Now().UTC(),
	}
	id, err := s.sessions.CreateSession(ctx, session)
	if err != nil {
		if errors.Is(err, domain.ErrRoundAlreadyActive) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextCreateSession, err)
	}
	session.ID = id

	roundCtx := logger.WithRound(s.baseCtx, id.String(), scope.GuildID)
	if requestID, ok := logger.RequestIDFromContext(ctx); ok {
		roundCtx = logger.WithRequestID(roundCtx, requestID)
	}

	log.Info(LogMsgRoundStarted, "round_id", id, "guild_id", scope.GuildID, "joke_number", joke.Number, "started_by", startedBy)
	s.publish(ctx, event.NewRoundStartedEvent(id, scope.GuildID, scope.ChannelID, startedBy, joke.Number))

	r := newRound(s, *session, scope)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		r.run(roundCtx)
	}()

	started := *session
	return &started, nil
}

// ForceEndAll ends the guild's active rounds. A running round notices at its next guard.
func (s *service) ForceEndAll(ctx context.Context, guildID, source string) (int64, error) {
	n, err := s.sessions.ForceEndAll(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextForceEnd, err)
	}
	logger.FromContext(ctx).Info(LogMsgForceEnded, "guild_id", guildID, "count", n, "source", source)
	if n > 0 {
		s.publish(ctx, event.NewRoundsForceEndedEvent(guildID, n, source))
	}
	return n, nil
}

func (s *service) GetActiveRound(ctx context.Context, guildID string) (*domain.Session, error) {
	return s.sessions.GetActiveSession(ctx, guildID)
}

func (s *service) EndStaleRounds(ctx context.Context, maxAge time.Duration) (int64, error) {
	n, err := s.sessions.EndStaleSessions(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextEndStaleRounds, err)
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgStaleRoundsEnded, "count", n, "max_age", maxAge)
	}
	return n, nil
}

// Shutdown stops accepting rounds, cancels running ones and waits for their goroutines.
// Canceled rounds stay active in the store until the sweeper ends them.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownForced)
		return ctx.Err()
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
