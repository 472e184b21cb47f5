package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/game"
	"github.com/osse101/MishkaBot_Go/internal/joke"
	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/metrics"
)

// RoundService is the part of the game service commands drive
type RoundService interface {
	StartRound(ctx context.Context, scope domain.Scope, startedBy, category string) (*domain.Session, error)
	ForceEndAll(ctx context.Context, guildID, source string) (int64, error)
}

// JokeService is the part of the joke catalogue commands drive
type JokeService interface {
	AddJoke(ctx context.Context, input joke.AddJokeInput) (*domain.Joke, error)
	DeleteJoke(ctx context.Context, guildID string, number int) error
	ImportFromAPI(ctx context.Context, guildID, addedBy string) (joke.ImportResult, error)
}

// GuildService is the part of the guild settings commands drive
type GuildService interface {
	IsEnabled(ctx context.Context, guildID string) (bool, error)
	RequireAdmin(ctx context.Context, guildID, userID string) error
	SetEnabled(ctx context.Context, guildID, actorID string, enabled bool) error
	AddAdmin(ctx context.Context, guildID, actorID, userID string) error
	RemoveAdmin(ctx context.Context, guildID, actorID, userID string) error
}

// Services are the backends slash commands call into
type Services struct {
	Rounds RoundService
	Jokes  JokeService
	Guilds GuildService
}

// CommandHandler handles a slash command. Handlers respond to the user
// themselves; the returned error only feeds logging and metrics.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) error

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle runs the handler for an application command interaction and records the result
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn(LogMsgUnknownCommand, "command", name)
		return
	}

	ctx, cancel := context.WithTimeout(logger.WithRequestID(context.Background(), logger.GenerateRequestID()), commandTimeout)
	defer cancel()
	log := logger.FromContext(ctx).With("command", name, "guild_id", i.GuildID)

	status := metrics.StatusOK
	defer func() {
		if p := recover(); p != nil {
			log.Error(LogMsgCommandPanicked, "panic", p)
			status = metrics.StatusError
		}
		metrics.DiscordCommands.WithLabelValues(name, status).Inc()
	}()

	if err := h(ctx, s, i, svc); err != nil {
		status = metrics.StatusError
		log.Warn(LogMsgCommandFailed, "error", err)
	}
}

// RegisterCommands intelligently registers/updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands)

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info(LogMsgCommandsForceUpdate, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
			return fmt.Errorf("%s: %w", ErrContextOverwrite, err)
		}
		slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
		return nil
	}

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFetchCommands, err)
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsChanged, "existing", len(existingCmds), "desired", len(desiredCmds))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("%s: %w", ErrContextOverwrite, err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondError edits the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

// sendEmbed edits the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgResponseFailed, "error", err)
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title     string
	Color     int
	Footer    string
	Ephemeral bool
}

// handleEmbedResponse defers the interaction, runs action and reports its
// result as an embed, or as a friendly error message.
func handleEmbedResponse(s *discordgo.Session, i *discordgo.InteractionCreate, action func() (string, error), cfg ResponseConfig) error {
	if !deferResponse(s, i, cfg.Ephemeral) {
		return errors.New(LogMsgDeferFailed)
	}

	msg, err := action()
	if err != nil {
		respondError(s, i, formatFriendlyError(err))
		return err
	}

	sendEmbed(s, i, createEmbed(cfg.Title, msg, cfg.Color, cfg.Footer))
	return nil
}

// requireGuild checks the game is enabled in the interaction's guild and,
// when admin is set, that the caller is a joke admin.
func requireGuild(ctx context.Context, svc *Services, i *discordgo.InteractionCreate, admin bool) error {
	enabled, err := svc.Guilds.IsEnabled(ctx, i.GuildID)
	if err != nil {
		return err
	}
	if !enabled {
		return domain.ErrGuildDisabled
	}
	if admin {
		return svc.Guilds.RequireAdmin(ctx, i.GuildID, getInteractionUser(i).ID)
	}
	return nil
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// getOptions indexes the command options by name
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		byName[o.Name] = o
	}
	return byName
}

// formatFriendlyError maps domain errors to messages players understand
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoundAlreadyActive):
		return MsgRoundActive
	case errors.Is(err, domain.ErrNoJokesAvailable):
		return MsgNoJokes
	case errors.Is(err, domain.ErrGuildDisabled):
		return MsgGuildDisabled
	case errors.Is(err, domain.ErrNotOwner):
		return MsgNotOwner
	case errors.Is(err, domain.ErrNotAdmin):
		return MsgNotAdmin
	case errors.Is(err, domain.ErrJokeNotFound):
		return MsgJokeNotFound
	case errors.Is(err, domain.ErrJokeExists):
		return MsgJokeExists
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, game.ErrShuttingDown):
		return MsgShuttingDown
	default:
		return MsgGenericError
	}
}
