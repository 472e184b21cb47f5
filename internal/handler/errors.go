package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidGuildID        = "Invalid guild ID"
	ErrMsgInvalidJokeNumber     = "Invalid joke number"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgNoActiveRound      = "No active round"
	ErrMsgRoundActive        = "A joke round is already active"
	ErrMsgNoJokes            = "No jokes available"
	ErrMsgGuildDisabled      = "The joke game is disabled for this guild"
	ErrMsgForbidden          = "Permission denied"
	ErrMsgJokeNotFound       = "Joke not found"
	ErrMsgJokeExists         = "A joke with that setup already exists"
	ErrMsgSessionNotFound    = "Round not found"
)

// Health responses
const (
	StatusOK                = "ok"
	StatusUnavailable       = "unavailable"
	MsgDatabaseUnavailable  = "database connection failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgServiceCallFailed = "Service call failed"
)

// ForceEndSourceHTTP labels rounds ended through the admin API
const ForceEndSourceHTTP = "http"
