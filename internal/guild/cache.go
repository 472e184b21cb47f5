package guild

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MishkaBot_Go/internal/domain"
)

// settingsCache is an expiring LRU of guild settings keyed by guild ID
type settingsCache struct {
	lru *expirable.LRU[string, domain.GuildSettings]
}

func newSettingsCache(size int, ttl time.Duration) *settingsCache {
	return &settingsCache{
		lru: expirable.NewLRU[string, domain.GuildSettings](size, nil, ttl),
	}
}

// Get returns a copy, so callers can't mutate the cached admin slice
func (c *settingsCache) Get(guildID string) (*domain.GuildSettings, bool) {
	entry, ok := c.lru.Get(guildID)
	if !ok {
		return nil, false
	}
	entry.AdminIDs = append([]string(nil), entry.AdminIDs...)
	return &entry, true
}

func (c *settingsCache) Set(settings *domain.GuildSettings) {
	entry := *settings
	entry.AdminIDs = append([]string(nil), settings.AdminIDs...)
	c.lru.Add(settings.GuildID, entry)
}

func (c *settingsCache) Invalidate(guildID string) {
	c.lru.Remove(guildID)
}
