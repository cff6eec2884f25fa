package progression

import (
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// RewardCurrencies credits a reward's gold and auxiliary currencies to a
// player. Kill and party share gold scales like experience: multiplier x
// (server gold rate + gold rate stat), then the guild bonus for givenType,
// rounding up each time. Other reward types credit their gold raw.
// Monsters never collect currency. Returns the gold granted.
func RewardCurrencies(rules *gamerule.Rules, c *model.Character, reward model.Reward, multiplier float64, givenType model.RewardGivenType) int32 {
	if c.Role == model.RoleMonster || !c.IsPlayer() {
		return 0
	}

	gold := scaleGold(rules, c, reward.Gold, multiplier, givenType)
	c.Player.Gold = mathutil.SaturatingAdd(c.Player.Gold, int64(gold))
	IncreaseCurrencies(c.Player, reward.Currencies, multiplier)
	return gold
}

func scaleGold(rules *gamerule.Rules, c *model.Character, gold int32, multiplier float64, givenType model.RewardGivenType) int32 {
	g, inGuild := rules.GuildBonus(c)
	var pct float64
	switch givenType {
	case model.RewardKillMonster:
		pct = g.GoldGainPercentage
	case model.RewardPartyShare:
		pct = g.ShareGoldGainPercentage
	default:
		return gold
	}

	gold = mathutil.CeilToInt32(float64(gold) * multiplier * (rules.Config.Rates.Gold + c.Stats.GoldRate))
	if inGuild {
		gold = mathutil.SaturatingAdd(gold, mathutil.CeilToInt32(float64(gold)*pct/100))
	}
	return gold
}

// IncreaseCurrencies credits auxiliary currencies scaled by multiplier,
// rounding up.
func IncreaseCurrencies(p *model.PlayerData, amounts []model.CurrencyAmount, multiplier float64) {
	if len(amounts) == 0 {
		return
	}
	if p.Currencies == nil {
		p.Currencies = make(map[string]int64, len(amounts))
	}
	for _, a := range amounts {
		scaled := mathutil.CeilToInt32(float64(a.Amount) * multiplier)
		p.Currencies[a.CurrencyID] = mathutil.SaturatingAdd(p.Currencies[a.CurrencyID], int64(scaled))
	}
}
