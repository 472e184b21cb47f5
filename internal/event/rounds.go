package event

import (
	"time"

	"github.com/google/uuid"
)

// RoundStartedPayloadV1 is the typed payload for round.started
type RoundStartedPayloadV1 struct {
	RoundID    string `json:"round_id"`
	GuildID    string `json:"guild_id"`
	ChannelID  string `json:"channel_id"`
	StartedBy  string `json:"started_by"`
	JokeNumber int    `json:"joke_number"`
	Timestamp  int64  `json:"timestamp"`
}

// RoundEndedPayloadV1 is the typed payload for round.ended
type RoundEndedPayloadV1 struct {
	RoundID         string  `json:"round_id"`
	GuildID         string  `json:"guild_id"`
	Outcome         string  `json:"outcome"`
	WinnerID        string  `json:"winner_id,omitempty"`
	Exact           bool    `json:"exact"`
	Candidates      int     `json:"candidates"`
	FunniestCount   int     `json:"funniest_count"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       int64   `json:"timestamp"`
}

// RoundsForceEndedPayloadV1 is the typed payload for round.force_ended
type RoundsForceEndedPayloadV1 struct {
	GuildID   string `json:"guild_id"`
	Count     int64  `json:"count"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// JokeAddedPayloadV1 is the typed payload for joke.added
type JokeAddedPayloadV1 struct {
	GuildID    string `json:"guild_id"`
	JokeNumber int    `json:"joke_number"`
	Source     string `json:"source"`
	Timestamp  int64  `json:"timestamp"`
}

func roundMetadata(roundID uuid.UUID, guildID string) map[string]any {
	return map[string]any{
		MetadataKeyRoundID: roundID.String(),
		MetadataKeyGuildID: guildID,
	}
}

// NewRoundStartedEvent creates a new round started event
func NewRoundStartedEvent(roundID uuid.UUID, guildID, channelID, startedBy string, jokeNumber int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundStarted,
		Payload: RoundStartedPayloadV1{
			RoundID:    roundID.String(),
			GuildID:    guildID,
			ChannelID:  channelID,
			StartedBy:  startedBy,
			JokeNumber: jokeNumber,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: roundMetadata(roundID, guildID),
	}
}

// NewRoundEndedEvent creates a new round ended event
func NewRoundEndedEvent(roundID uuid.UUID, guildID string, payload RoundEndedPayloadV1) Event {
	payload.RoundID = roundID.String()
	payload.GuildID = guildID
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     RoundEnded,
		Payload:  payload,
		Metadata: roundMetadata(roundID, guildID),
	}
}

// NewRoundsForceEndedEvent creates a new force end event. source names the caller (discord, http, cli).
func NewRoundsForceEndedEvent(guildID string, count int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundsForceEnded,
		Payload: RoundsForceEndedPayloadV1{
			GuildID:   guildID,
			Count:     count,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]any{MetadataKeyGuildID: guildID},
	}
}

// NewJokeAddedEvent creates a new joke added event
func NewJokeAddedEvent(guildID string, jokeNumber int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JokeAdded,
		Payload: JokeAddedPayloadV1{
			GuildID:    guildID,
			JokeNumber: jokeNumber,
			Source:     source,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]any{MetadataKeyGuildID: guildID},
	}
}
