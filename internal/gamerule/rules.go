// Package gamerule holds the read-only context every rule entry point takes:
// gameplay configuration, the static catalog and the guild bonus lookup.
package gamerule

import (
	"github.com/udisondev/gamerule/internal/config"
	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/model"
)

// GuildLookup resolves a guild id to its reward bonuses.
type GuildLookup interface {
	Guild(guildID int32) (model.GuildBonus, bool)
}

// NoGuilds is a GuildLookup that knows no guild; every bonus is zero.
type NoGuilds struct{}

// Guild always reports the guild as absent.
func (NoGuilds) Guild(int32) (model.GuildBonus, bool) { return model.GuildBonus{}, false }

// Random is the source of uniform draws. *rand.Rand from math/rand/v2
// satisfies it; tests pass scripted sequences.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Rules bundles what the rule engine reads. It is never mutated after
// construction and may be shared by concurrent combat resolutions.
type Rules struct {
	Config  config.Gameplay
	Catalog *data.Catalog
	Guilds  GuildLookup
}

// New builds Rules; a nil guild lookup becomes NoGuilds.
func New(cfg config.Gameplay, catalog *data.Catalog, guilds GuildLookup) *Rules {
	if guilds == nil {
		guilds = NoGuilds{}
	}
	return &Rules{Config: cfg, Catalog: catalog, Guilds: guilds}
}

// GuildBonus returns the bonus of the character's guild, zero when the
// character is not a player, has no guild or the guild is unknown.
func (r *Rules) GuildBonus(c *model.Character) (model.GuildBonus, bool) {
	if c == nil || !c.IsPlayer() || c.Player.GuildID == 0 {
		return model.GuildBonus{}, false
	}
	return r.Guilds.Guild(c.Player.GuildID)
}
