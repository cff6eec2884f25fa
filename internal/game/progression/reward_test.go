package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gamerule/internal/game/progression"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

func TestMakeMonsterReward(t *testing.T) {
	cat := testutil.NewCatalog(t)
	wolf := cat.Monster(testutil.GrayWolfID)
	require.NotNil(t, wolf)

	// level 3: exp range [30, 42], gold fixed at 5
	rng := testutil.NewScriptedRandom(t).WithInts(4)
	got := progression.MakeMonsterReward(rng, wolf, 3)

	assert.Equal(t, model.Reward{Exp: 34, Gold: 5}, got)
}

func TestMakeMonsterReward_Unknown(t *testing.T) {
	assert.Equal(t, model.Reward{}, progression.MakeMonsterReward(testutil.FixedRandom{}, nil, 5))
}

func TestMakeQuestReward(t *testing.T) {
	cat := testutil.NewCatalog(t)
	quest := cat.Quest(testutil.WolfHuntID)
	require.NotNil(t, quest)

	got := progression.MakeQuestReward(quest)
	got.Currencies[0].Amount = 99

	assert.Equal(t, int32(150), got.Exp)
	assert.Equal(t, int32(50), got.Gold)
	assert.Equal(t, int32(2), quest.RewardCurrencies[0].Amount, "reward does not alias the definition")
}

func TestApplyQuestReward(t *testing.T) {
	rules := testutil.NewRules(t, testutil.Guilds{7: {GuildID: 7, ExpGainPercentage: 50, GoldGainPercentage: 50}})
	rules.Config.Rates.Exp = 3
	rules.Config.Rates.Gold = 3
	reward := progression.MakeQuestReward(rules.Catalog.Quest(testutil.WolfHuntID))

	p := testutil.NewPlayer("p")
	p.Player.GuildID = 7
	exp, up := progression.RewardExp(rules, p, reward, 1, model.RewardQuest)
	gold := progression.RewardCurrencies(rules, p, reward, 1, model.RewardQuest)

	assert.Equal(t, int32(150), exp)
	assert.True(t, up)
	assert.Equal(t, int32(2), p.Level)
	assert.Equal(t, int64(50), p.Exp)
	assert.Equal(t, int32(50), gold)
	assert.Equal(t, int64(2), p.Player.Currency("token"))
}
