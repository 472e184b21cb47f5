package repository

import (
	"context"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// Guild defines data access for per-guild game settings
type Guild interface {
	// GetGuildSettings returns default (disabled, no admins) settings for unknown guilds.
	GetGuildSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	SetGuildEnabled(ctx context.Context, guildID string, enabled bool) error
	AddGuildAdmin(ctx context.Context, guildID, userID string) error
	RemoveGuildAdmin(ctx context.Context, guildID, userID string) error
}
