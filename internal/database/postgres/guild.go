package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// GuildRepository implements repository.Guild for PostgreSQL
type GuildRepository struct {
	db *pgxpool.Pool
}

// NewGuildRepository creates a new GuildRepository
func NewGuildRepository(db *pgxpool.Pool) *GuildRepository {
	return &GuildRepository{db: db}
}

// GetGuildSettings returns the stored settings or disabled defaults
func (r *GuildRepository) GetGuildSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	settings := &domain.GuildSettings{GuildID: guildID, AdminIDs: []string{}}
	err := r.db.QueryRow(ctx, `SELECT enabled, admin_ids FROM guild_settings WHERE guild_id = $1`, guildID).
		Scan(&settings.Enabled, &settings.AdminIDs)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return settings, nil
}

// SetGuildEnabled upserts the enabled flag
func (r *GuildRepository) SetGuildEnabled(ctx context.Context, guildID string, enabled bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guild_settings (guild_id, enabled) VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = NOW()`,
		guildID, enabled)
	if err != nil {
		return fmt.Errorf("failed to set guild enabled: %w", err)
	}
	return nil
}

// AddGuildAdmin appends userID to the admin list if it isn't already there
func (r *GuildRepository) AddGuildAdmin(ctx context.Context, guildID, userID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guild_settings (guild_id, admin_ids) VALUES ($1, ARRAY[$2::text])
		ON CONFLICT (guild_id) DO UPDATE
		SET admin_ids = CASE
				WHEN $2 = ANY(guild_settings.admin_ids) THEN guild_settings.admin_ids
				ELSE array_append(guild_settings.admin_ids, $2)
			END,
			updated_at = NOW()`,
		guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to add guild admin: %w", err)
	}
	return nil
}

// RemoveGuildAdmin removes userID from the admin list
func (r *GuildRepository) RemoveGuildAdmin(ctx context.Context, guildID, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE guild_settings SET admin_ids = array_remove(admin_ids, $2), updated_at = NOW()
		WHERE guild_id = $1`, guildID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove guild admin: %w", err)
	}
	return nil
}
