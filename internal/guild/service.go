package guild

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/logger"
	"github.com/osse101/MishkaBot_Go/internal/repository"
)

// Service manages per-guild game settings and permissions.
// The bot owner counts as an admin everywhere.
type Service interface {
	GetSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error)
	IsEnabled(ctx context.Context, guildID string) (bool, error)
	IsAdmin(ctx context.Context, guildID, userID string) (bool, error)
	// RequireAdmin returns domain.ErrNotAdmin unless userID is an admin or the owner.
	RequireAdmin(ctx context.Context, guildID, userID string) error
	SetEnabled(ctx context.Context, guildID, actorID string, enabled bool) error
	AddAdmin(ctx context.Context, guildID, actorID, userID string) error
	RemoveAdmin(ctx context.Context, guildID, actorID, userID string) error
}

type service struct {
	repo    repository.Guild
	cache   *settingsCache
	ownerID string
}

// NewService creates a guild service. ownerID may be empty.
func NewService(repo repository.Guild, ownerID string, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:    repo,
		cache:   newSettingsCache(DefaultCacheSize, cacheTTL),
		ownerID: ownerID,
	}
}

func (s *service) GetSettings(ctx context.Context, guildID string) (*domain.GuildSettings, error) {
	if settings, ok := s.cache.Get(guildID); ok {
		return settings, nil
	}
	settings, err := s.repo.GetGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSettings, err)
	}
	s.cache.Set(settings)
	return settings, nil
}

func (s *service) IsEnabled(ctx context.Context, guildID string) (bool, error) {
	settings, err := s.GetSettings(ctx, guildID)
	if err != nil {
		return false, err
	}
	return settings.Enabled, nil
}

func (s *service) isOwner(userID string) bool {
	return s.ownerID != "" && userID == s.ownerID
}

func (s *service) IsAdmin(ctx context.Context, guildID, userID string) (bool, error) {
	if s.isOwner(userID) {
		return true, nil
	}
	settings, err := s.GetSettings(ctx, guildID)
	if err != nil {
		return false, err
	}
	return settings.IsAdmin(userID), nil
}

func (s *service) RequireAdmin(ctx context.Context, guildID, userID string) error {
	ok, err := s.IsAdmin(ctx, guildID, userID)
	if err != nil {
		return err
	}
	if !ok {
		logger.FromContext(ctx).Info(LogMsgPermissionNay, "guild_id", guildID, "user_id", userID, "required", "admin")
		return domain.ErrNotAdmin
	}
	return nil
}

func (s *service) requireOwner(ctx context.Context, guildID, userID string) error {
	if !s.isOwner(userID) {
		logger.FromContext(ctx).Info(LogMsgPermissionNay, "guild_id", guildID, "user_id", userID, "required", "owner")
		return domain.ErrNotOwner
	}
	return nil
}

func (s *service) SetEnabled(ctx context.Context, guildID, actorID string, enabled bool) error {
	if err := s.RequireAdmin(ctx, guildID, actorID); err != nil {
		return err
	}
	if err := s.repo.SetGuildEnabled(ctx, guildID, enabled); err != nil {
		return fmt.Errorf("%s: %w", ErrContextSetEnabled, err)
	}
	s.cache.Invalidate(guildID)
	logger.FromContext(ctx).Info(LogMsgGuildEnabled, "guild_id", guildID, "enabled", enabled, "actor_id", actorID)
	return nil
}

func (s *service) AddAdmin(ctx context.Context, guildID, actorID, userID string) error {
	if err := s.requireOwner(ctx, guildID, actorID); err != nil {
		return err
	}
	if err := s.repo.AddGuildAdmin(ctx, guildID, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextAddAdmin, err)
	}
	s.cache.Invalidate(guildID)
	logger.FromContext(ctx).Info(LogMsgAdminAdded, "guild_id", guildID, "user_id", userID)
	return nil
}

func (s *service) RemoveAdmin(ctx context.Context, guildID, actorID, userID string) error {
	if err := s.requireOwner(ctx, guildID, actorID); err != nil {
		return err
	}
	if err := s.repo.RemoveGuildAdmin(ctx, guildID, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRemoveAdmin, err)
	}
	s.cache.Invalidate(guildID)
	logger.FromContext(ctx).Info(LogMsgAdminRemoved, "guild_id", guildID, "user_id", userID)
	return nil
}
