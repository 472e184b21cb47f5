package joke

import "time"

// JokeAPI settings
const (
	DefaultJokeAPIURL = "https://v2.jokeapi.dev"
	// JokeAPIImportPath fetches ten two-part jokes with the unsafe flags filtered out
	JokeAPIImportPath = "/joke/Miscellaneous,Dark,Pun,Spooky?blacklistFlags=religious,political,racist,sexist&type=twopart&amount=10"

	apiTimeout    = 10 * time.Second
	apiMaxRetries = 3
	apiRetryDelay = 500 * time.Millisecond
)

// Field limits
const (
	MaxSetupLength    = 1000
	MaxCategoryLength = 32
)

// Import sources, recorded on joke.added events
const (
	SourceManual  = "manual"
	SourceJokeAPI = "jokeapi"
	SourceFile    = "file"
)

// Log messages
const (
	LogMsgJokeAdded        = "Joke added"
	LogMsgJokeDeleted      = "Joke deleted"
	LogMsgJokesImported    = "Jokes imported"
	LogMsgRetryingRequest  = "Retrying JokeAPI request"
	LogMsgRequestFailed    = "JokeAPI request failed"
	LogMsgSkippedImportRow = "Skipped invalid joke in import"
)

// Error contexts
const (
	ErrContextAddJoke     = "failed to add joke"
	ErrContextDeleteJoke  = "failed to delete joke"
	ErrContextSampleJoke  = "failed to sample joke"
	ErrContextImportJoke  = "failed to import joke"
	ErrContextFetchJokes  = "failed to fetch jokes"
	ErrContextDecodeJokes = "failed to decode jokes"
)
