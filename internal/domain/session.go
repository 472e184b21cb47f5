package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionState represents where a joke round is in its lifecycle.
// Transitions are monotonic: collecting -> {voting, ended}, voting -> ended.
type SessionState string

const (
	SessionStateCollecting SessionState = "collecting"
	SessionStateVoting     SessionState = "voting"
	SessionStateEnded      SessionState = "ended"
)

// IsTerminal reports whether no further transitions are allowed
func (s SessionState) IsTerminal() bool {
	return s == SessionStateEnded
}

// Session is the persisted record of one joke round in a guild
type Session struct {
	ID              uuid.UUID    `json:"id"`
	GuildID         string       `json:"guild_id"`
	ChannelID       string       `json:"channel_id"`
	StartedBy       string       `json:"started_by"`
	JokeNumber      int          `json:"joke_number"`
	Prompt          string       `json:"prompt"`
	Answer          string       `json:"answer"`
	State           SessionState `json:"state"`
	WinnerID        *string      `json:"winner_id,omitempty"`
	FunniestEntries []FunnyEntry `json:"funniest_entries,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	EndedAt         *time.Time   `json:"ended_at,omitempty"`
}

// IsEnded is a nil-safe check used by the finalize guard
func (s *Session) IsEnded() bool {
	return s != nil && s.State.IsTerminal()
}

// FunnyEntry is a crowd-voted wrong answer attached to a session at finalize time
type FunnyEntry struct {
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	VoteCount int    `json:"vote_count"`
}

// Candidate is a vote-able wrong answer collected during the guess phase.
// It only lives in memory for the duration of a round.
type Candidate struct {
	AuthorID string
	Text     string
	Label    string
}

// VoteTally is the number of distinct non-bot voters for one option
type VoteTally struct {
	Label string
	Count int
}
