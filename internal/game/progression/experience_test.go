package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/game/progression"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

func TestRewardExp_LevelUpLoop(t *testing.T) {
	tests := []struct {
		name      string
		exp       int32
		wantLevel int32
		wantExp   int64
		wantUp    bool
	}{
		{"below threshold", 99, 1, 99, false},
		{"exactly one threshold", 100, 2, 0, true},
		{"two thresholds", 250, 3, 0, true},
		{"two thresholds with remainder", 260, 3, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := testutil.NewRules(t, nil)
			p := testutil.NewPlayer("p")

			got, up := progression.RewardExp(rules, p, model.Reward{Exp: tt.exp}, 1, model.RewardKillMonster)

			assert.Equal(t, tt.exp, got)
			assert.Equal(t, tt.wantUp, up)
			assert.Equal(t, tt.wantLevel, p.Level)
			assert.Equal(t, tt.wantExp, p.Exp)
		})
	}
}

func TestRewardExp_MaxLevelDiscardsExp(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	p := testutil.NewPlayer("p")
	p.Level = 4 // table has thresholds for levels 1..3
	p.Exp = 77

	_, up := progression.RewardExp(rules, p, model.Reward{Exp: 1000}, 1, model.RewardKillMonster)

	assert.False(t, up)
	assert.Equal(t, int32(4), p.Level)
	assert.Zero(t, p.Exp)
	assert.Zero(t, p.Player.StatPoint)
}

func TestRewardExp_ReachingMaxLevelResetsExp(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	p := testutil.NewPlayer("p")

	_, up := progression.RewardExp(rules, p, model.Reward{Exp: 10000}, 1, model.RewardKillMonster)

	assert.True(t, up)
	assert.Equal(t, int32(4), p.Level)
	assert.Zero(t, p.Exp)
}

func TestRewardExp_PointAccrual(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.LevelUp.StatPointsPerLevel = 5
	rules.Config.LevelUp.SkillPointsPerLevel = 1
	rules.Config.LevelUp.StatPointsUntilLevel = 0
	rules.Config.LevelUp.SkillPointsUntilLevel = 4
	p := testutil.NewPlayer("p")

	progression.RewardExp(rules, p, model.Reward{Exp: 475}, 1, model.RewardKillMonster)

	require.Equal(t, int32(4), p.Level)
	assert.Equal(t, int32(15), p.Player.StatPoint, "uncapped: every level")
	// skill points accrue while level+1 < 4, checked after each increment:
	// level 2 yes, level 3 no, level 4 no
	assert.Equal(t, int32(1), p.Player.SkillPoint)
}

func TestRewardExp_PointsSaturate(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.LevelUp.StatPointsPerLevel = 5
	p := testutil.NewPlayer("p")
	p.Player.StatPoint = math.MaxInt32 - 2

	progression.RewardExp(rules, p, model.Reward{Exp: 250}, 1, model.RewardKillMonster)

	assert.Equal(t, int32(math.MaxInt32), p.Player.StatPoint)
}

func TestPointsNeverWrap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rules := testutil.NewRules(t, nil)
		rules.Config.LevelUp.StatPointsPerLevel = rapid.Int32Range(0, math.MaxInt32).Draw(rt, "perLevel")
		p := testutil.NewPlayer("p")
		start := rapid.Int32Range(0, math.MaxInt32).Draw(rt, "start")
		p.Player.StatPoint = start

		progression.RewardExp(rules, p, model.Reward{Exp: rapid.Int32Range(0, 1000).Draw(rt, "exp")}, 1, model.RewardKillMonster)

		if p.Player.StatPoint < start {
			rt.Fatalf("stat points went from %d to %d", start, p.Player.StatPoint)
		}
	})
}

func TestRewardExp_Scaling(t *testing.T) {
	guilds := testutil.Guilds{7: {GuildID: 7, ExpGainPercentage: 10, ShareExpGainPercentage: 50}}
	rules := testutil.NewRules(t, guilds)
	rules.Catalog.Exp = data.ExperienceTable{1_000_000}
	rules.Config.Rates.Exp = 1.5

	tests := []struct {
		name       string
		guildID    int32
		multiplier float64
		expRate    float64
		givenType  model.RewardGivenType
		want       int32
	}{
		{"rates only", 0, 1, 0, model.RewardKillMonster, 15},
		{"multiplier and stat", 0, 0.5, 0.5, model.RewardKillMonster, 10},
		{"rounds up", 0, 1, 0.01, model.RewardKillMonster, 16},
		{"kill bonus", 7, 1, 0, model.RewardKillMonster, 17},
		{"share bonus", 7, 1, 0, model.RewardPartyShare, 23},
		{"unknown guild", 8, 1, 0, model.RewardKillMonster, 15},
		{"quest is raw", 7, 2, 0.5, model.RewardQuest, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewPlayer("p")
			p.Player.GuildID = tt.guildID
			p.Stats.ExpRate = tt.expRate

			got, _ := progression.RewardExp(rules, p, model.Reward{Exp: 10}, tt.multiplier, tt.givenType)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(tt.want), p.Exp)
		})
	}
}

func TestRewardExp_Monsters(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.Rates.Exp = 10

	wild := testutil.NewMonster("wolf")
	got, up := progression.RewardExp(rules, wild, model.Reward{Exp: 500}, 1, model.RewardKillMonster)
	assert.Zero(t, got)
	assert.False(t, up)
	assert.Equal(t, int32(1), wild.Level)

	pet := model.NewMonster(3, "pet", 1, model.SummonPetItem, testutil.DefaultVitals)
	got, up = progression.RewardExp(rules, pet, model.Reward{Exp: 120}, 1, model.RewardKillMonster)
	assert.Equal(t, int32(120), got, "pets take raw exp")
	assert.True(t, up)
	assert.Equal(t, int32(2), pet.Level)
	assert.Equal(t, int64(20), pet.Exp)
}

func TestRewardExp_RefillOnLevelUp(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.LevelUp.RecoverHP = true
	rules.Config.LevelUp.RecoverMP = false
	rules.Config.LevelUp.RecoverFood = true
	p := testutil.NewPlayer("p")
	p.SetCurrentHP(10)
	p.SetCurrent(model.ResourceMP, 10)
	p.SetCurrent(model.ResourceFood, 10)

	progression.RewardExp(rules, p, model.Reward{Exp: 100}, 1, model.RewardKillMonster)

	assert.Equal(t, p.MaxHP(), p.CurrentHP())
	assert.Equal(t, int32(10), p.CurrentMP())
	assert.Equal(t, p.Max(model.ResourceFood), p.CurrentFood())
}

func TestRewardExp_NoRefillWhenDead(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.LevelUp.RecoverHP = true
	p := testutil.NewPlayer("p")
	p.SetCurrentHP(0)

	_, up := progression.RewardExp(rules, p, model.Reward{Exp: 100}, 1, model.RewardKillMonster)

	assert.True(t, up)
	assert.True(t, p.IsDead())
}

func TestApplyDeathPenalty(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.ExpLostPercentageWhenDeath = 10
	p := testutil.NewPlayer("p")
	p.Level = 2 // next threshold 150
	p.Exp = 20

	assert.Equal(t, int64(15), progression.ApplyDeathPenalty(rules, p))
	assert.Equal(t, int64(5), p.Exp)

	assert.Equal(t, int64(5), progression.ApplyDeathPenalty(rules, p), "never below zero")
	assert.Zero(t, p.Exp)

	m := testutil.NewMonster("m")
	m.Exp = 50
	assert.Zero(t, progression.ApplyDeathPenalty(rules, m))
	assert.Zero(t, progression.ExpLostPercentageWhenDeath(rules, m))
}
