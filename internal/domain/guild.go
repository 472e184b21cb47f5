package domain

import "slices"

// GuildSettings holds the per-guild switches for the joke game
type GuildSettings struct {
	GuildID  string   `json:"guild_id"`
	Enabled  bool     `json:"enabled"`
	AdminIDs []string `json:"admin_ids"`
}

// IsAdmin reports whether userID is in the guild's admin list
func (g *GuildSettings) IsAdmin(userID string) bool {
	if g == nil {
		return false
	}
	return slices.Contains(g.AdminIDs, userID)
}
