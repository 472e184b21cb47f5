package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/joke"
)

const (
	testGuildID   = "111111111111111111"
	testChannelID = "222222222222222222"
	testUserID    = "333333333333333333"
	testTargetID  = "444444444444444444"
	testAppID     = "555555555555555555"
)

// capturedRequest is one call the session made to the Discord REST API
type capturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// MockRoundTripper intercepts Discord API calls and records them
type MockRoundTripper struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	m.mu.Lock()
	m.requests = append(m.requests, capturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	m.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// edits returns the bodies of every interaction response edit
func (m *MockRoundTripper) edits(t *testing.T) []discordgo.WebhookEdit {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []discordgo.WebhookEdit
	for _, r := range m.requests {
		if r.Method != http.MethodPatch || !strings.Contains(r.Path, "/messages/@original") {
			continue
		}
		var edit discordgo.WebhookEdit
		require.NoError(t, json.Unmarshal(r.Body, &edit))
		out = append(out, edit)
	}
	return out
}

// responseText returns the content or embed description of the final response edit
func (m *MockRoundTripper) responseText(t *testing.T) string {
	t.Helper()
	edits := m.edits(t)
	require.NotEmpty(t, edits, "no interaction response edit was sent")
	last := edits[len(edits)-1]
	if last.Content != nil {
		return *last.Content
	}
	require.NotNil(t, last.Embeds)
	require.NotEmpty(t, *last.Embeds)
	return (*last.Embeds)[0].Description
}

// TestContext bundles a Discord session wired to a recording transport and mocked backends
type TestContext struct {
	Session  *discordgo.Session
	Discord  *MockRoundTripper
	Rounds   *MockRoundService
	Jokes    *MockJokeService
	Guilds   *MockGuildService
	Services *Services
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	transport := &MockRoundTripper{}
	session.Client = &http.Client{Transport: transport}

	tc := &TestContext{
		Session: session,
		Discord: transport,
		Rounds:  &MockRoundService{},
		Jokes:   &MockJokeService{},
		Guilds:  &MockGuildService{},
	}
	tc.Services = &Services{Rounds: tc.Rounds, Jokes: tc.Jokes, Guilds: tc.Guilds}

	t.Cleanup(func() {
		tc.Rounds.AssertExpectations(t)
		tc.Jokes.AssertExpectations(t)
		tc.Guilds.AssertExpectations(t)
	})
	return tc
}

// newInteraction builds an application command interaction from testUserID in the test guild
func newInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			AppID:     testAppID,
			Token:     "interaction-token",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   testGuildID,
			ChannelID: testChannelID,
			Member:    &discordgo.Member{User: &discordgo.User{ID: testUserID, Username: "tester"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func userOpt(name, userID string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: userID}
}

// MockRoundService mocks RoundService
type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) StartRound(ctx context.Context, scope domain.Scope, startedBy, category string) (*domain.Session, error) {
	args := m.Called(ctx, scope, startedBy, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockRoundService) ForceEndAll(ctx context.Context, guildID, source string) (int64, error) {
	args := m.Called(ctx, guildID, source)
	return args.Get(0).(int64), args.Error(1)
}

// MockJokeService mocks JokeService
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
	return m.Called(ctx, guildID, number).Error(0)
}

func (m *MockJokeService) ImportFromAPI(ctx context.Context, guildID, addedBy string) (joke.ImportResult, error) {
	args := m.Called(ctx, guildID, addedBy)
	return args.Get(0).(joke.ImportResult), args.Error(1)
}

// MockGuildService mocks GuildService
type MockGuildService struct {
	mock.Mock
}

func (m *MockGuildService) IsEnabled(ctx context.Context, guildID string) (bool, error) {
	args := m.Called(ctx, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGuildService) RequireAdmin(ctx context.Context, guildID, userID string) error {
	return m.Called(ctx, guildID, userID).Error(0)
}

func (m *MockGuildService) SetEnabled(ctx context.Context, guildID, actorID string, enabled bool) error {
	return m.Called(ctx, guildID, actorID, enabled).Error(0)
}

func (m *MockGuildService) AddAdmin(ctx context.Context, guildID, actorID, userID string) error {
	return m.Called(ctx, guildID, actorID, userID).Error(0)
}

func (m *MockGuildService) RemoveAdmin(ctx context.Context, guildID, actorID, userID string) error {
	return m.Called(ctx, guildID, actorID, userID).Error(0)
}

// MockREST mocks RESTClient for gateway tests
type MockREST struct {
	mock.Mock
}

func (m *MockREST) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockREST) MessageReactionAdd(channelID, messageID, emojiID string, _ ...discordgo.RequestOption) error {
	return m.Called(channelID, messageID, emojiID).Error(0)
}

func (m *MockREST) MessageReactions(channelID, messageID, emojiID string, limit int, beforeID, afterID string, _ ...discordgo.RequestOption) ([]*discordgo.User, error) {
	args := m.Called(channelID, messageID, emojiID, limit, beforeID, afterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*discordgo.User), args.Error(1)
}

func (m *MockREST) MessageReactionsRemoveAll(channelID, messageID string, _ ...discordgo.RequestOption) error {
	return m.Called(channelID, messageID).Error(0)
}
