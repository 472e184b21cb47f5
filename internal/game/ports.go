package game

import (
	"context"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// Corpus supplies jokes for new rounds
type Corpus interface {
	// SampleOne returns nil when the guild has no joke matching category.
	SampleOne(ctx context.Context, guildID, category string) (*domain.Joke, error)
}

// Subscription is an ordered stream of inbound messages for one channel
type Subscription interface {
	Messages() <-chan domain.ChatMessage
	Close()
}

// MessageChannel reads and writes round messages
type MessageChannel interface {
	Subscribe(ctx context.Context, scope domain.Scope) (Subscription, error)
	Send(ctx context.Context, scope domain.Scope, announcement domain.Announcement) (domain.MessageRef, error)
}

// Reactions maps an option label to the set of distinct non-bot users who picked it
type Reactions map[string]map[string]struct{}

// ReactionChannel renders vote options on a posted message and reads them back
type ReactionChannel interface {
	AttachOptions(ctx context.Context, ref domain.MessageRef, labels []string) error
	// CollectReactions blocks for timeout, then reports the reactors per label.
	CollectReactions(ctx context.Context, ref domain.MessageRef, labels []string, timeout time.Duration) (Reactions, error)
	ClearOptions(ctx context.Context, ref domain.MessageRef) error
}

// GuildPolicy reports whether the game is switched on for a guild
type GuildPolicy interface {
	IsEnabled(ctx context.Context, guildID string) (bool, error)
}
