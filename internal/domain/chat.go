package domain

// Scope identifies where a round is played. GuildID is the unit of
// exclusivity (one active round per guild); ChannelID is where the round's
// messages are posted and read.
type Scope struct {
	GuildID   string
	ChannelID string
}

// ChatMessage is an inbound message delivered to a round
type ChatMessage struct {
	ID        string
	GuildID   string
	ChannelID string
	AuthorID  string
	IsBot     bool
	Content   string
}

// MessageRef points at a message the bot has posted
type MessageRef struct {
	ChannelID string
	MessageID string
}
