package discord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/game"
	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/metrics"
)

// RESTClient is the part of *discordgo.Session the gateway writes through
type RESTClient interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	MessageReactions(channelID, messageID, emojiID string, limit int, beforeID, afterID string, options ...discordgo.RequestOption) ([]*discordgo.User, error)
	MessageReactionsRemoveAll(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Gateway fans inbound channel messages out to round subscribers and
// posts round announcements. It implements game.MessageChannel and
// game.ReactionChannel.
type Gateway struct {
	rest       RESTClient
	bufferSize int

	mu   sync.RWMutex
	subs map[string]map[*subscription]struct{}
}

var (
	_ game.MessageChannel  = (*Gateway)(nil)
	_ game.ReactionChannel = (*Gateway)(nil)
)

// NewGateway creates a gateway writing through rest
func NewGateway(rest RESTClient) *Gateway {
	return &Gateway{
		rest:       rest,
		bufferSize: SubscriberBufferSize,
		subs:       make(map[string]map[*subscription]struct{}),
	}
}

type subscription struct {
	gw        *Gateway
	channelID string
	ch        chan domain.ChatMessage
	once      sync.Once
}

func (s *subscription) Messages() <-chan domain.ChatMessage {
	return s.ch
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.gw.mu.Lock()
		defer s.gw.mu.Unlock()
		if set, ok := s.gw.subs[s.channelID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(s.gw.subs, s.channelID)
			}
		}
		close(s.ch)
		metrics.ActiveSubscribers.Dec()
	})
}

// Subscribe starts buffering messages posted in scope's channel
func (g *Gateway) Subscribe(_ context.Context, scope domain.Scope) (game.Subscription, error) {
	sub := &subscription{
		gw:        g,
		channelID: scope.ChannelID,
		ch:        make(chan domain.ChatMessage, g.bufferSize),
	}

	g.mu.Lock()
	set, ok := g.subs[scope.ChannelID]
	if !ok {
		set = make(map[*subscription]struct{})
		g.subs[scope.ChannelID] = set
	}
	set[sub] = struct{}{}
	g.mu.Unlock()

	metrics.ActiveSubscribers.Inc()
	return sub, nil
}

// Dispatch delivers an inbound message to every subscriber of its channel.
// It never blocks: a full subscriber loses the message.
func (g *Gateway) Dispatch(m *discordgo.Message) {
	if m == nil || m.Author == nil {
		return
	}
	msg := domain.ChatMessage{
		ID:        m.ID,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
		IsBot:     m.Author.Bot,
		Content:   m.Content,
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for sub := range g.subs[m.ChannelID] {
		select {
		case sub.ch <- msg:
		default:
			metrics.DiscordMessagesDropped.Inc()
			logger.FromContext(context.Background()).Warn(LogMsgMessageDropped, "channel_id", m.ChannelID, "message_id", m.ID)
		}
	}
}

// Send posts an announcement in scope's channel
func (g *Gateway) Send(_ context.Context, scope domain.Scope, announcement domain.Announcement) (domain.MessageRef, error) {
	data, err := renderAnnouncement(announcement)
	if err != nil {
		return domain.MessageRef{}, err
	}
	msg, err := g.rest.ChannelMessageSendComplex(scope.ChannelID, data)
	if err != nil {
		return domain.MessageRef{}, fmt.Errorf("%s: %w", ErrContextSendMessage, err)
	}
	return domain.MessageRef{ChannelID: scope.ChannelID, MessageID: msg.ID}, nil
}

// AttachOptions reacts to ref with one regional indicator per label, in order
func (g *Gateway) AttachOptions(ctx context.Context, ref domain.MessageRef, labels []string) error {
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		emoji, err := optionEmoji(label)
		if err != nil {
			return err
		}
		if err := g.rest.MessageReactionAdd(ref.ChannelID, ref.MessageID, emoji, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("%s %s: %w", ErrContextAddReaction, label, err)
		}
	}
	return nil
}

// CollectReactions waits out the vote window, then reads the non-bot reactors of each option
func (g *Gateway) CollectReactions(ctx context.Context, ref domain.MessageRef, labels []string, timeout time.Duration) (game.Reactions, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	reactions := make(game.Reactions, len(labels))
	for _, label := range labels {
		emoji, err := optionEmoji(label)
		if err != nil {
			return nil, err
		}
		users, err := g.reactors(ctx, ref, emoji)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrContextListReactions, label, err)
		}
		reactions[label] = users
	}
	return reactions, nil
}

// reactors pages through everyone who reacted with emoji, skipping bots
func (g *Gateway) reactors(ctx context.Context, ref domain.MessageRef, emoji string) (map[string]struct{}, error) {
	users := make(map[string]struct{})
	after := ""
	for {
		page, err := g.rest.MessageReactions(ref.ChannelID, ref.MessageID, emoji, ReactionPageLimit, "", after, discordgo.WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, u := range page {
			if u == nil || u.Bot {
				continue
			}
			users[u.ID] = struct{}{}
		}
		if len(page) < ReactionPageLimit {
			return users, nil
		}
		after = page[len(page)-1].ID
	}
}

// ClearOptions removes every reaction from ref
func (g *Gateway) ClearOptions(ctx context.Context, ref domain.MessageRef) error {
	if err := g.rest.MessageReactionsRemoveAll(ref.ChannelID, ref.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%s: %w", ErrContextClearReactions, err)
	}
	return nil
}
