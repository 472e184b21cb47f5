package domain

// Event types published on the event bus
const (
	EventTypeRoundStarted     = "round.started"
	EventTypeRoundEnded       = "round.ended"
	EventTypeRoundsForceEnded = "round.force_ended"
	EventTypeJokeAdded        = "joke.added"
)

// Round outcomes, used as event payload values and metric labels
const (
	OutcomeWinner       = "winner"
	OutcomeWinnerVoted  = "winner_voted"
	OutcomeFunniestOnly = "funniest_only"
	OutcomeNoWinner     = "no_winner"
)
