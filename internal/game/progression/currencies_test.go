package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/gamerule/internal/game/progression"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

func TestRewardCurrencies(t *testing.T) {
	guilds := testutil.Guilds{3: {GuildID: 3, GoldGainPercentage: 20, ShareGoldGainPercentage: 5}}
	rules := testutil.NewRules(t, guilds)
	rules.Config.Rates.Gold = 2

	reward := model.Reward{
		Gold: 10,
		Currencies: []model.CurrencyAmount{
			{CurrencyID: "token", Amount: 3},
			{CurrencyID: "token", Amount: 1},
			{CurrencyID: "shell", Amount: 5},
		},
	}

	t.Run("kill with guild", func(t *testing.T) {
		p := testutil.NewPlayer("p")
		p.Player.GuildID = 3
		p.Player.Gold = 5

		got := progression.RewardCurrencies(rules, p, reward, 1.5, model.RewardKillMonster)

		// 10 * 1.5 * 2 = 30, +20% = 36
		assert.Equal(t, int32(36), got)
		assert.Equal(t, int64(41), p.Player.Gold)
		// ceil(3*1.5) + ceil(1*1.5)
		assert.Equal(t, int64(7), p.Player.Currency("token"))
		assert.Equal(t, int64(8), p.Player.Currency("shell"))
	})

	t.Run("party share", func(t *testing.T) {
		p := testutil.NewPlayer("p")
		p.Player.GuildID = 3

		got := progression.RewardCurrencies(rules, p, reward, 1, model.RewardPartyShare)

		// 20 + ceil(1)
		assert.Equal(t, int32(21), got)
	})

	t.Run("quest reward is raw", func(t *testing.T) {
		p := testutil.NewPlayer("p")
		p.Player.GuildID = 3

		got := progression.RewardCurrencies(rules, p, reward, 1.5, model.RewardQuest)

		assert.Equal(t, int32(10), got)
		assert.Equal(t, int64(10), p.Player.Gold)
		// currencies still follow the multiplier
		assert.Equal(t, int64(7), p.Player.Currency("token"))
	})

	t.Run("gold saturates", func(t *testing.T) {
		p := testutil.NewPlayer("p")
		p.Player.Gold = math.MaxInt64 - 1

		progression.RewardCurrencies(rules, p, reward, 1, model.RewardKillMonster)

		assert.Equal(t, int64(math.MaxInt64), p.Player.Gold)
	})

	t.Run("monsters collect nothing", func(t *testing.T) {
		pet := model.NewMonster(9, "pet", 1, model.SummonPetItem, testutil.DefaultVitals)

		assert.Zero(t, progression.RewardCurrencies(rules, pet, reward, 1, model.RewardKillMonster))
	})
}

func TestIncreaseCurrencies_NilMap(t *testing.T) {
	p := &model.PlayerData{}

	progression.IncreaseCurrencies(p, []model.CurrencyAmount{{CurrencyID: "token", Amount: 2}}, 1)

	assert.Equal(t, int64(2), p.Currency("token"))
}
