package config

// Database drivers
const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)
