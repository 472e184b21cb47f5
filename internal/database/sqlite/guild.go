package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// GuildRepository implements repository.Guild on SQLite.
// Admin IDs are stored as a JSON array.
type GuildRepository struct {
	db *sql.DB
}

func NewGuildRepository(db *sql.DB) *GuildRepository {
	return &GuildRepository{db: db}
}

func (r *GuildRepository) GetGuildSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	return r.getSettings(ctx, r.db, guildID)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *GuildRepository) getSettings(ctx context.Context, q queryer, guildID string) (*domain.GuildSettings, error) {
	settings := &domain.GuildSettings{GuildID: guildID, AdminIDs: []string{}}
	var (
		enabled bool
		admins  string
	)
	err := q.QueryRowContext(ctx, `SELECT enabled, admin_ids FROM guild_settings WHERE guild_id = ?`, guildID).
		Scan(&enabled, &admins)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	settings.Enabled = enabled
	if err := json.Unmarshal([]byte(admins), &settings.AdminIDs); err != nil {
		return nil, fmt.Errorf("failed to decode admin list: %w", err)
	}
	return settings, nil
}

func (r *GuildRepository) SetGuildEnabled(ctx context.Context, guildID string, enabled bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guild_settings (guild_id, enabled, updated_at) VALUES (?1, ?2, ?3)
		ON CONFLICT (guild_id) DO UPDATE SET enabled = excluded.enabled, updated_at = excluded.updated_at`,
		guildID, enabled, toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to set guild enabled: %w", err)
	}
	return nil
}

func (r *GuildRepository) AddGuildAdmin(ctx context.Context, guildID, userID string) error {
	return r.updateAdmins(ctx, guildID, func(ids []string) []string {
		if slices.Contains(ids, userID) {
			return ids
		}
		return append(ids, userID)
	})
}

func (r *GuildRepository) RemoveGuildAdmin(ctx context.Context, guildID, userID string) error {
	return r.updateAdmins(ctx, guildID, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool { return id == userID })
	})
}

// updateAdmins read-modify-writes the admin list inside a transaction
func (r *GuildRepository) updateAdmins(ctx context.Context, guildID string, mutate func([]string) []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	settings, err := r.getSettings(ctx, tx, guildID)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(mutate(settings.AdminIDs))
	if err != nil {
		return fmt.Errorf("failed to encode admin list: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO guild_settings (guild_id, admin_ids, updated_at) VALUES (?1, ?2, ?3)
		ON CONFLICT (guild_id) DO UPDATE SET admin_ids = excluded.admin_ids, updated_at = excluded.updated_at`,
		guildID, string(encoded), toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to update guild admins: %w", err)
	}
	return tx.Commit()
}
