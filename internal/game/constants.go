package game

import "time"

// Guess and vote rules
const (
	// WinThreshold is the minimum similarity for a guess to win the round
	WinThreshold = 0.55
	// ExactThreshold marks a winning guess as an exact match
	ExactThreshold = 0.99
	// CandidateMarker prefixes guesses that should be put to the vote
	CandidateMarker = ">"
	// MaxCandidates is the number of available option labels (A-Z)
	MaxCandidates = 26
	// MinVoteCandidates is the smallest field worth voting on
	MinVoteCandidates = 2
)

// Default round timings
const (
	DefaultGuessTimeout = 60 * time.Second
	DefaultVoteDelay    = 1 * time.Second
	DefaultVoteTimeout  = 15 * time.Second
)

// finalizeTimeout bounds the store writes and announcements after a round's context is gone
const finalizeTimeout = 10 * time.Second

// Log messages
const (
	LogMsgRoundStarted         = "Joke round started"
	LogMsgGuessPhaseEnded      = "Guess phase ended"
	LogMsgRoundEndedExternally = "Round already ended, aborting"
	LogMsgVoteCASLost          = "Round left collecting state before vote, aborting"
	LogMsgRoundFinalized       = "Round finalized"
	LogMsgRoundFailed          = "Round failed"
	LogMsgRoundPanicked        = "Round panicked"
	LogMsgRoundCanceled        = "Round canceled by shutdown, leaving it for the sweeper"
	LogMsgClearOptionsFailed   = "Failed to clear vote options"
	LogMsgFailureNoticeFailed  = "Failed to announce round failure"
	LogMsgPublishFailed        = "Failed to publish round event"
	LogMsgForceEnded           = "Force-ended active rounds"
	LogMsgStaleRoundsEnded     = "Ended stale rounds"
	LogMsgShuttingDown         = "Shutting down game service"
	LogMsgShutdownDone         = "Game service shutdown complete"
	LogMsgShutdownForced       = "Game service shutdown timed out, rounds still running"
)

// Error contexts
const (
	ErrContextCheckGuild     = "failed to check guild"
	ErrContextActiveSession  = "failed to check active round"
	ErrContextSampleJoke     = "failed to sample joke"
	ErrContextCreateSession  = "failed to create round"
	ErrContextSubscribe      = "failed to subscribe to channel"
	ErrContextSendPrompt     = "failed to send prompt"
	ErrContextReadSession    = "failed to read round"
	ErrContextMarkEnded      = "failed to end round"
	ErrContextUpdateState    = "failed to move round to voting"
	ErrContextSendReveal     = "failed to send reveal"
	ErrContextSendVote       = "failed to send vote prompt"
	ErrContextAttachOptions  = "failed to attach vote options"
	ErrContextCollectVotes   = "failed to collect votes"
	ErrContextSendOutcome    = "failed to send outcome"
	ErrContextForceEnd       = "failed to force end rounds"
	ErrContextEndStaleRounds = "failed to end stale rounds"
)
