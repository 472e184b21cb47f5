package event

import "github.com/osse101/MishkaBot_Go/internal/domain"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Round lifecycle event types
const (
	RoundStarted     Type = domain.EventTypeRoundStarted
	RoundEnded       Type = domain.EventTypeRoundEnded
	RoundsForceEnded Type = domain.EventTypeRoundsForceEnded
	JokeAdded        Type = domain.EventTypeJokeAdded
)

// Metadata keys
const (
	MetadataKeyRoundID = "round_id"
	MetadataKeyGuildID = "guild_id"
)

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	LogMsgPublishFailed      = "Failed to publish event"
)

// Error messages
const (
	ErrMsgNilPayload    = "event has no payload"
	ErrMsgDecodePayload = "failed to decode payload of"
)
