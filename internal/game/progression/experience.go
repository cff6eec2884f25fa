// Package progression applies kill and quest rewards to characters:
// experience with the level-up loop, gold and auxiliary currencies.
package progression

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// RewardExp scales a reward's experience and feeds it to the character.
// Returns the experience granted and whether at least one level was gained.
//
// Monsters collect nothing unless they are item pets. For players, kill and
// party share rewards are scaled by multiplier x (server exp rate + exp rate
// stat) and then raised by the guild bonus matching givenType; both steps
// round up. Other reward types, such as quests, are collected raw.
// At max level the experience is discarded.
func RewardExp(rules *gamerule.Rules, c *model.Character, reward model.Reward, multiplier float64, givenType model.RewardGivenType) (int32, bool) {
	if c.Role == model.RoleMonster && c.SummonType != model.SummonPetItem {
		return 0, false
	}

	exp := reward.Exp
	if c.IsPlayer() {
		exp = scaleExp(rules, c, exp, multiplier, givenType)
	}

	oldLevel := c.Level
	leveledUp := false
	table := rules.Catalog.Exp
	next := table.NextLevelExp(c.Level)
	if next > 0 {
		c.Exp = max(mathutil.SaturatingAdd(c.Exp, int64(exp)), 0)
		for next > 0 && c.Exp >= next {
			c.Exp -= next
			c.Level++
			next = table.NextLevelExp(c.Level)
			if c.IsPlayer() {
				accruePoints(rules, c)
			}
			leveledUp = true
		}
	}

	// Max level: experience is not collected.
	if next <= 0 {
		c.Exp = 0
	}

	if leveledUp {
		if !c.IsDead() {
			refillOnLevelUp(rules, c)
		}
		slog.Info("character leveled up",
			"character", c.Name,
			"oldLevel", oldLevel,
			"newLevel", c.Level,
			"exp", c.Exp)
	}

	return exp, leveledUp
}

// scaleExp applies rates and the guild bonus to kill and party share
// rewards. Any other reward type passes through unscaled.
func scaleExp(rules *gamerule.Rules, c *model.Character, exp int32, multiplier float64, givenType model.RewardGivenType) int32 {
	g, inGuild := rules.GuildBonus(c)
	var pct float64
	switch givenType {
	case model.RewardKillMonster:
		pct = g.ExpGainPercentage
	case model.RewardPartyShare:
		pct = g.ShareExpGainPercentage
	default:
		return exp
	}

	exp = mathutil.CeilToInt32(float64(exp) * multiplier * (rules.Config.Rates.Exp + c.Stats.ExpRate))
	if inGuild {
		exp = mathutil.SaturatingAdd(exp, mathutil.CeilToInt32(float64(exp)*pct/100))
	}
	return exp
}

// accruePoints grants the per-level stat and skill points. A cap of 0 means
// points accrue at every level. Totals saturate instead of wrapping.
func accruePoints(rules *gamerule.Rules, c *model.Character) {
	lu := rules.Config.LevelUp
	if lu.StatPointsUntilLevel == 0 || c.Level+1 < lu.StatPointsUntilLevel {
		c.Player.StatPoint = mathutil.SaturatingAdd(c.Player.StatPoint, lu.StatPointsPerLevel)
	}
	if lu.SkillPointsUntilLevel == 0 || c.Level+1 < lu.SkillPointsUntilLevel {
		c.Player.SkillPoint = mathutil.SaturatingAdd(c.Player.SkillPoint, lu.SkillPointsPerLevel)
	}
}

func refillOnLevelUp(rules *gamerule.Rules, c *model.Character) {
	lu := rules.Config.LevelUp
	if lu.RecoverHP {
		c.Refill(model.ResourceHP)
	}
	if lu.RecoverMP {
		c.Refill(model.ResourceMP)
	}
	if lu.RecoverFood {
		c.Refill(model.ResourceFood)
	}
	if lu.RecoverWater {
		c.Refill(model.ResourceWater)
	}
	if lu.RecoverStamina {
		c.Refill(model.ResourceStamina)
	}
}

// ExpLostPercentageWhenDeath returns the share of the current level's
// threshold a character loses on death. Monsters lose nothing.
func ExpLostPercentageWhenDeath(rules *gamerule.Rules, c *model.Character) float64 {
	if c.Role == model.RoleMonster {
		return 0
	}
	return rules.Config.ExpLostPercentageWhenDeath
}

// ApplyDeathPenalty removes the death share of the next threshold from the
// collected experience. It never removes a level. Returns the amount lost.
func ApplyDeathPenalty(rules *gamerule.Rules, c *model.Character) int64 {
	pct := ExpLostPercentageWhenDeath(rules, c)
	next := rules.Catalog.Exp.NextLevelExp(c.Level)
	if pct <= 0 || next <= 0 {
		return 0
	}
	lost := min(int64(float64(next)*pct/100), c.Exp)
	c.Exp -= lost
	return lost
}
