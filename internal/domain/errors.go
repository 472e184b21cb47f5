package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Round errors
	ErrMsgRoundAlreadyActive = "a joke round is already active"
	ErrMsgNoJokesAvailable   = "no jokes available"
	ErrMsgSessionNotFound    = "session not found"

	// Guild errors
	ErrMsgGuildDisabled = "joke game is disabled for this guild"
	ErrMsgNotAdmin      = "admin permission required"
	ErrMsgNotOwner      = "owner permission required"

	// Joke errors
	ErrMsgJokeNotFound = "joke not found"
	ErrMsgJokeExists   = "a joke with that setup already exists"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrRoundAlreadyActive = errors.New(ErrMsgRoundAlreadyActive)
	ErrNoJokesAvailable   = errors.New(ErrMsgNoJokesAvailable)
	ErrSessionNotFound    = errors.New(ErrMsgSessionNotFound)

	ErrGuildDisabled = errors.New(ErrMsgGuildDisabled)
	ErrNotAdmin      = errors.New(ErrMsgNotAdmin)
	ErrNotOwner      = errors.New(ErrMsgNotOwner)

	ErrJokeNotFound = errors.New(ErrMsgJokeNotFound)
	ErrJokeExists   = errors.New(ErrMsgJokeExists)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
