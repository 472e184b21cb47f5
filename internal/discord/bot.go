package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry
	Gateway  *Gateway

	// Services must be set before Start
	Services *Services
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// New creates a new Discord bot. Gateway events are dispatched synchronously
// so each channel's messages reach rounds in arrival order.
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateSession, err)
	}
	s.SyncEvents = true
	s.Identify.Intents = BotIntents

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		Gateway:  NewGateway(s),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextOpenConnection, err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Close closes the gateway connection
func (b *Bot) Close() error {
	return b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Services == nil {
		slog.Warn(LogMsgMissingServices)
		return
	}
	// Command work can take seconds; keep it off the ordered event loop.
	go b.Registry.Handle(s, i, b.Services)
}

func (b *Bot) messageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	b.Gateway.Dispatch(m.Message)
}
