package discord

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/metrics"
)

var testScope = domain.Scope{GuildID: testGuildID, ChannelID: testChannelID}

func chatMessage(channelID, id, authorID, content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        id,
		GuildID:   testGuildID,
		ChannelID: channelID,
		Content:   content,
		Author:    &discordgo.User{ID: authorID},
	}
}

func TestGateway_DispatchDeliversInOrder(t *testing.T) {
	gw := NewGateway(&MockREST{})
	sub, err := gw.Subscribe(context.Background(), testScope)
	require.NoError(t, err)
	defer sub.Close()

	gw.Dispatch(chatMessage(testChannelID, "1", "u1", "first"))
	gw.Dispatch(chatMessage("other-channel", "2", "u2", "elsewhere"))
	gw.Dispatch(chatMessage(testChannelID, "3", "u3", "> second"))

	first := <-sub.Messages()
	second := <-sub.Messages()
	assert.Equal(t, "first", first.Content)
	assert.Equal(t, "u1", first.AuthorID)
	assert.Equal(t, "> second", second.Content)
	assert.Equal(t, testGuildID, second.GuildID)
	assert.Empty(t, sub.Messages())
}

func TestGateway_DispatchMarksBots(t *testing.T) {
	gw := NewGateway(&MockREST{})
	sub, err := gw.Subscribe(context.Background(), testScope)
	require.NoError(t, err)
	defer sub.Close()

	m := chatMessage(testChannelID, "1", "bot", "beep")
	m.Author.Bot = true
	gw.Dispatch(m)
	gw.Dispatch(&discordgo.Message{ChannelID: testChannelID})

	got := <-sub.Messages()
	assert.True(t, got.IsBot)
	assert.Empty(t, sub.Messages())
}

func TestGateway_FansOutToEverySubscriber(t *testing.T) {
	gw := NewGateway(&MockREST{})
	a, _ := gw.Subscribe(context.Background(), testScope)
	b, _ := gw.Subscribe(context.Background(), testScope)
	defer a.Close()
	defer b.Close()

	gw.Dispatch(chatMessage(testChannelID, "1", "u1", "hello"))

	assert.Equal(t, "hello", (<-a.Messages()).Content)
	assert.Equal(t, "hello", (<-b.Messages()).Content)
}

func TestGateway_CloseStopsDelivery(t *testing.T) {
	gw := NewGateway(&MockREST{})
	before := testutil.ToFloat64(metrics.ActiveSubscribers)

	sub, err := gw.Subscribe(context.Background(), testScope)
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ActiveSubscribers))

	sub.Close()
	sub.Close()
	assert.Equal(t, before, testutil.ToFloat64(metrics.ActiveSubscribers))

	_, open := <-sub.Messages()
	assert.False(t, open)

	assert.NotPanics(t, func() {
		gw.Dispatch(chatMessage(testChannelID, "1", "u1", "late"))
	})
	assert.Empty(t, gw.subs)
}

func TestGateway_FullSubscriberDropsMessages(t *testing.T) {
	gw := NewGateway(&MockREST{})
	gw.bufferSize = 1
	sub, err := gw.Subscribe(context.Background(), testScope)
	require.NoError(t, err)
	defer sub.Close()

	dropped := testutil.ToFloat64(metrics.DiscordMessagesDropped)
	gw.Dispatch(chatMessage(testChannelID, "1", "u1", "kept"))
	gw.Dispatch(chatMessage(testChannelID, "2", "u1", "dropped"))

	assert.Equal(t, dropped+1, testutil.ToFloat64(metrics.DiscordMessagesDropped))
	assert.Equal(t, "kept", (<-sub.Messages()).Content)
}

func TestGateway_Send(t *testing.T) {
	rest := &MockREST{}
	rest.On("ChannelMessageSendComplex", testChannelID, mock.MatchedBy(func(m *discordgo.MessageSend) bool {
		return len(m.Embeds) == 1 && m.Embeds[0].Title == TitleVote
	})).Return(&discordgo.Message{ID: "msg-1"}, nil)

	gw := NewGateway(rest)
	ref, err := gw.Send(context.Background(), testScope, domain.Announcement{Kind: domain.AnnouncementVote})

	require.NoError(t, err)
	assert.Equal(t, domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-1"}, ref)
	rest.AssertExpectations(t)
}

func TestGateway_SendErrors(t *testing.T) {
	rest := &MockREST{}
	rest.On("ChannelMessageSendComplex", testChannelID, mock.Anything).Return(nil, errors.New("discord down"))
	gw := NewGateway(rest)

	_, err := gw.Send(context.Background(), testScope, domain.Announcement{Kind: domain.AnnouncementPrompt})
	assert.ErrorContains(t, err, ErrContextSendMessage)

	_, err = gw.Send(context.Background(), testScope, domain.Announcement{Kind: "bogus"})
	assert.ErrorContains(t, err, ErrContextUnknownAnnounce)
}

func TestGateway_AttachOptions(t *testing.T) {
	rest := &MockREST{}
	var order []string
	rest.On("MessageReactionAdd", testChannelID, "msg-1", mock.Anything).
		Run(func(args mock.Arguments) { order = append(order, args.String(2)) }).
		Return(nil)

	gw := NewGateway(rest)
	ref := domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-1"}
	require.NoError(t, gw.AttachOptions(context.Background(), ref, []string{"A", "B", "C"}))

	assert.Equal(t, []string{"🇦", "🇧", "🇨"}, order)
}

func TestGateway_AttachOptionsStopsOnError(t *testing.T) {
	rest := &MockREST{}
	rest.On("MessageReactionAdd", testChannelID, "msg-1", "🇦").Return(errors.New("forbidden")).Once()

	gw := NewGateway(rest)
	ref := domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-1"}
	err := gw.AttachOptions(context.Background(), ref, []string{"A", "B"})

	assert.ErrorContains(t, err, ErrContextAddReaction)
	rest.AssertNumberOfCalls(t, "MessageReactionAdd", 1)
}

func TestGateway_CollectReactionsPagesAndSkipsBots(t *testing.T) {
	fullPage := make([]*discordgo.User, ReactionPageLimit)
	for i := range fullPage {
		fullPage[i] = &discordgo.User{ID: fmt.Sprintf("u%03d", i)}
	}
	lastID := fullPage[len(fullPage)-1].ID

	rest := &MockREST{}
	rest.On("MessageReactions", testChannelID, "msg-1", "🇦", ReactionPageLimit, "", "").Return(fullPage, nil)
	rest.On("MessageReactions", testChannelID, "msg-1", "🇦", ReactionPageLimit, "", lastID).
		Return([]*discordgo.User{{ID: "late-voter"}, {ID: "mishka", Bot: true}, {ID: "u000"}}, nil)
	rest.On("MessageReactions", testChannelID, "msg-1", "🇧", ReactionPageLimit, "", "").
		Return([]*discordgo.User{{ID: "mishka", Bot: true}}, nil)

	gw := NewGateway(rest)
	ref := domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-1"}
	reactions, err := gw.CollectReactions(context.Background(), ref, []string{"A", "B"}, time.Millisecond)

	require.NoError(t, err)
	assert.Len(t, reactions["A"], ReactionPageLimit+1)
	assert.Contains(t, reactions["A"], "late-voter")
	assert.NotContains(t, reactions["A"], "mishka")
	assert.Empty(t, reactions["B"])
	rest.AssertExpectations(t)
}

func TestGateway_CollectReactionsWaitsForTimeout(t *testing.T) {
	rest := &MockREST{}
	rest.On("MessageReactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*discordgo.User{}, nil)

	gw := NewGateway(rest)
	start := time.Now()
	_, err := gw.CollectReactions(context.Background(), domain.MessageRef{ChannelID: "c", MessageID: "m"}, []string{"A"}, 50*time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestGateway_CollectReactionsCanceled(t *testing.T) {
	rest := &MockREST{}
	gw := NewGateway(rest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gw.CollectReactions(ctx, domain.MessageRef{ChannelID: "c", MessageID: "m"}, []string{"A"}, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	rest.AssertNotCalled(t, "MessageReactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGateway_ClearOptions(t *testing.T) {
	rest := &MockREST{}
	rest.On("MessageReactionsRemoveAll", testChannelID, "msg-1").Return(nil).Once()
	rest.On("MessageReactionsRemoveAll", testChannelID, "msg-2").Return(errors.New("missing permissions")).Once()

	gw := NewGateway(rest)
	assert.NoError(t, gw.ClearOptions(context.Background(), domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-1"}))
	assert.ErrorContains(t, gw.ClearOptions(context.Background(), domain.MessageRef{ChannelID: testChannelID, MessageID: "msg-2"}), ErrContextClearReactions)
}
