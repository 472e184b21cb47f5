package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names referenced when mapping unique violations
const (
	ConstraintJokesPkey        = "jokes_pkey"
	ConstraintJokesGuildSetup  = "jokes_guild_setup_key"
	IndexJokeSessionsOneActive = "idx_joke_sessions_one_active"
)

// maxNumberRetries bounds retries when two jokes race for the same per-guild number
const maxNumberRetries = 3
