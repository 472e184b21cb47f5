package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Command names
const (
	CommandPing            = "ping"
	CommandJoke            = "joke"
	CommandJokeAdd         = "joke-add"
	CommandJokeDelete      = "joke-delete"
	CommandJokeClear       = "joke-clear"
	CommandJokeImport      = "joke-import"
	CommandJokeEnable      = "joke-enable"
	CommandJokeDisable     = "joke-disable"
	CommandJokeAdminAdd    = "joke-admin-add"
	CommandJokeAdminRemove = "joke-admin-remove"
)

// Command option names
const (
	OptionCategory  = "category"
	OptionSetup     = "setup"
	OptionPunchline = "punchline"
	OptionNumber    = "number"
	OptionUser      = "user"
)

// ForceEndSourceDiscord is recorded on force-end events triggered by /joke-clear
const ForceEndSourceDiscord = "discord"

// Embed colors
const (
	ColorPrompt  = 0x61C5A9
	ColorVote    = 0xF1C40F
	ColorSuccess = 0x2ECC71
	ColorError   = 0xE74C3C
	ColorInfo    = 0x3498DB
)

// Footer constants for standardized embed footers
const (
	FooterMishka      = "Mishka"
	FooterMishkaAdmin = "Mishka Admin"
)

// Gateway tuning
const (
	// SubscriberBufferSize is the per-round inbound message buffer
	SubscriberBufferSize = 256
	// ReactionPageLimit is the largest page Discord returns for reaction users
	ReactionPageLimit = 100
	// regionalIndicatorA is the code point of 🇦
	regionalIndicatorA = 0x1F1E6
)

// commandTimeout bounds the work done for a single slash command
const commandTimeout = 15 * time.Second

// BotIntents are the gateway intents the bot needs to read guesses and votes
const BotIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentMessageContent

// Log messages
const (
	LogMsgBotReady            = "Bot is ready"
	LogMsgBotRunning          = "Discord bot is now running"
	LogMsgCheckingCommands    = "Checking Discord commands..."
	LogMsgCommandsForceUpdate = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged   = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged     = "Commands changed, updating..."
	LogMsgCommandsUpdated     = "Commands updated successfully"
	LogMsgCommandFailed       = "Command failed"
	LogMsgCommandPanicked     = "Command handler panicked"
	LogMsgDeferFailed         = "Failed to send deferred response"
	LogMsgResponseFailed      = "Failed to send response"
	LogMsgMessageDropped      = "Subscriber buffer full, dropping message"
	LogMsgUnknownCommand      = "Unknown command"
	LogMsgMissingServices     = "Command received before services were wired"
)

// Error contexts
const (
	ErrContextCreateSession   = "error creating Discord session"
	ErrContextOpenConnection  = "error opening connection"
	ErrContextFetchCommands   = "failed to fetch existing commands"
	ErrContextOverwrite       = "failed to update commands"
	ErrContextSendMessage     = "failed to send message"
	ErrContextAddReaction     = "failed to add reaction"
	ErrContextListReactions   = "failed to list reactions"
	ErrContextClearReactions  = "failed to clear reactions"
	ErrContextUnknownLabel    = "unknown option label"
	ErrContextUnknownAnnounce = "unknown announcement kind"
)
