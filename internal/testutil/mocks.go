package testutil

import "github.com/udisondev/gamerule/internal/model"

// Guilds is an in-memory GuildLookup keyed by guild id.
type Guilds map[int32]model.GuildBonus

// Guild returns the bonus stored for guildID.
func (g Guilds) Guild(guildID int32) (model.GuildBonus, bool) {
	b, ok := g[guildID]
	return b, ok
}
