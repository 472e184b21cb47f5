package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// memStore is an in-memory repository.Session that records every state write
type memStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*domain.Session
	history  map[uuid.UUID][]domain.SessionState

	// endedWrites counts successful MarkEnded calls
	endedWrites int
	// getErr, when set, is returned by GetSession
	getErr error
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[uuid.UUID]*domain.Session),
		history:  make(map[uuid.UUID][]domain.SessionState),
	}
}

func (s *memStore) CreateSession(_ context.Context, session *domain.Session) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sessions {
		if existing.GuildID == session.GuildID && !existing.IsEnded() {
			return uuid.Nil, domain.ErrRoundAlreadyActive
		}
	}
	stored := *session
	stored.ID = uuid.New()
	s.sessions[stored.ID] = &stored
	s.history[stored.ID] = []domain.SessionState{stored.State}
	return stored.ID, nil
}

func (s *memStore) GetSession(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *memStore) GetActiveSession(_ context.Context, guildID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		if session.GuildID == guildID && !session.IsEnded() {
			cp := *session
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) UpdateSessionStateIfMatches(_ context.Context, id uuid.UUID, expected, next domain.SessionState) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok || session.State != expected {
		return 0, nil
	}
	session.State = next
	s.history[id] = append(s.history[id], next)
	return 1, nil
}

func (s *memStore) MarkEnded(_ context.Context, id uuid.UUID, winnerID *string, entries []domain.FunnyEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok || session.IsEnded() {
		return false, nil
	}
	s.end(session)
	session.WinnerID = winnerID
	session.FunniestEntries = entries
	s.endedWrites++
	return true, nil
}

func (s *memStore) ForceEndAll(_ context.Context, guildID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, session := range s.sessions {
		if session.GuildID == guildID && !session.IsEnded() {
			s.end(session)
			n++
		}
	}
	return n, nil
}

func (s *memStore) EndStaleSessions(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, session := range s.sessions {
		if !session.IsEnded() && session.CreatedAt.Before(olderThan) {
			s.end(session)
			n++
		}
	}
	return n, nil
}

// end must be called with mu held
func (s *memStore) end(session *domain.Session) {
	now := time.Now()
	session.State = domain.SessionStateEnded
	session.EndedAt = &now
	s.history[session.ID] = append(s.history[session.ID], domain.SessionStateEnded)
}

func (s *memStore) only() (*domain.Session, []domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		cp := *session
		return &cp, append([]domain.SessionState(nil), s.history[id]...)
	}
	return nil, nil
}

func (s *memStore) setGetErr(err error) {
	s.mu.Lock()
	s.getErr = err
	s.mu.Unlock()
}

// fakeSub is a channel-backed Subscription
type fakeSub struct {
	ch     chan domain.ChatMessage
	once   sync.Once
	closed chan struct{}
}

func (f *fakeSub) Messages() <-chan domain.ChatMessage { return f.ch }

func (f *fakeSub) Close() { f.once.Do(func() { close(f.closed) }) }

// fakeChat implements MessageChannel and ReactionChannel
type fakeChat struct {
	mu        sync.Mutex
	sub       *fakeSub
	sent      []domain.Announcement
	sentCh    chan domain.Announcement
	attached  []string
	cleared   int
	reactions Reactions
	nextID    int

	// onCollect runs inside CollectReactions, before it returns
	onCollect func()
	// failKind makes Send fail for that announcement kind
	failKind domain.AnnouncementKind
}

func newFakeChat() *fakeChat {
	return &fakeChat{sentCh: make(chan domain.Announcement, 64)}
}

func (f *fakeChat) Subscribe(_ context.Context, _ domain.Scope) (Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sub = &fakeSub{ch: make(chan domain.ChatMessage, 64), closed: make(chan struct{})}
	return f.sub, nil
}

func (f *fakeChat) Send(_ context.Context, _ domain.Scope, a domain.Announcement) (domain.MessageRef, error) {
	f.mu.Lock()
	if f.failKind != "" && a.Kind == f.failKind {
		f.mu.Unlock()
		return domain.MessageRef{}, errors.New("send failed")
	}
	f.nextID++
	ref := domain.MessageRef{ChannelID: "chan", MessageID: fmt.Sprintf("m%d", f.nextID)}
	f.sent = append(f.sent, a)
	f.mu.Unlock()

	f.sentCh <- a
	return ref, nil
}

func (f *fakeChat) AttachOptions(_ context.Context, _ domain.MessageRef, labels []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attached = append([]string(nil), labels...)
	return nil
}

func (f *fakeChat) CollectReactions(ctx context.Context, _ domain.MessageRef, _ []string, timeout time.Duration) (Reactions, error) {
	if err := sleep(ctx, timeout); err != nil {
		return nil, err
	}
	if f.onCollect != nil {
		f.onCollect()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reactions, nil
}

func (f *fakeChat) ClearOptions(_ context.Context, _ domain.MessageRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	return nil
}

// emit delivers a message to the round's subscription
func (f *fakeChat) emit(authorID, content string) {
	f.emitMsg(domain.ChatMessage{AuthorID: authorID, Content: content})
}

func (f *fakeChat) emitMsg(msg domain.ChatMessage) {
	f.mu.Lock()
	sub := f.sub
	f.mu.Unlock()
	sub.ch <- msg
}

// await blocks until an announcement of kind is sent
func (f *fakeChat) await(kind domain.AnnouncementKind, timeout time.Duration) (domain.Announcement, bool) {
	deadline := time.After(timeout)
	for {
		select {
		case a := <-f.sentCh:
			if a.Kind == kind {
				return a, true
			}
		case <-deadline:
			return domain.Announcement{}, false
		}
	}
}

func (f *fakeChat) kinds() []domain.AnnouncementKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.AnnouncementKind, len(f.sent))
	for i, a := range f.sent {
		out[i] = a.Kind
	}
	return out
}

func (f *fakeChat) last() domain.Announcement {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

func voters(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
