package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	APIKey      string `env:"API_KEY" validate:"required"` // API key for the admin HTTP API

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres" validate:"oneof=postgres sqlite"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"mishkabot"`
	DBMaxConns int    `env:"DB_MAX_CONNS" envDefault:"10" validate:"min=1"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/mishka.db" validate:"required_if=DBDriver sqlite"`

	Discord DiscordConfig
	Game    GameConfig `envPrefix:"GAME_"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m" validate:"gt=0"`
	GuildCacheTTL time.Duration `env:"GUILD_CACHE_TTL" envDefault:"5m" validate:"gt=0"`
	JokeAPIURL    string        `env:"JOKEAPI_URL" envDefault:"https://v2.jokeapi.dev" validate:"url"`
}

// DiscordConfig holds the bot credentials
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	OwnerID string `env:"DISCORD_OWNER_ID"`
	// ForceCommandUpdate bulk-overwrites slash commands on startup
	ForceCommandUpdate bool `env:"DISCORD_FORCE_COMMAND_UPDATE" envDefault:"false"`
}

// GameConfig holds the round timings
type GameConfig struct {
	GuessTimeout      time.Duration `env:"GUESS_TIMEOUT" envDefault:"60s" validate:"gt=0"`
	VoteTimeout       time.Duration `env:"VOTE_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	VoteDelay         time.Duration `env:"VOTE_DELAY" envDefault:"1s" validate:"gte=0"`
	VoteWithoutWinner bool          `env:"VOTE_WITHOUT_WINNER" envDefault:"false"`
	MaxRoundAge       time.Duration `env:"MAX_ROUND_AGE" envDefault:"10m" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
