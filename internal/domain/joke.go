package domain

import "time"

// Joke is one entry of a guild's joke catalogue.
// Number is sequential per guild and is what users refer to (#3).
type Joke struct {
	GuildID   string    `json:"guild_id"`
	Number    int       `json:"number"`
	Setup     string    `json:"setup"`
	Punchline string    `json:"punchline"`
	Category  string    `json:"category"`
	AddedBy   string    `json:"added_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
