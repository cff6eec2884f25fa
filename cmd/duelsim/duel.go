package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/gamerule/internal/game/combat"
	"github.com/udisondev/gamerule/internal/game/progression"
	"github.com/udisondev/gamerule/internal/game/vitals"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// roundDuration is the simulated time between two exchanges.
const roundDuration = time.Second

// DuelResult summarizes a finished duel.
type DuelResult struct {
	Rounds       int
	WinnerName   string
	RewardedExp  int32
	RewardedGold int32
	LeveledUp    bool
	ExpLost      int64
}

// logApplier stands in for a status effect system and only logs.
type logApplier struct{}

func (logApplier) ApplyStatusEffect(app combat.StatusEffectApplication) {
	slog.Debug("status effect",
		"effect", app.Effect.EffectID,
		"level", app.Effect.Level,
		"source", app.SourceID,
		"instigator", app.Instigator.Name,
		"target", app.Target.Name,
		"self", app.Self)
}

// RunDuel lets both sides exchange attacks until one dies, the round limit
// is reached or ctx is cancelled. The winner of a kill is rewarded.
func RunDuel(ctx context.Context, rules *gamerule.Rules, rng gamerule.Random, sc Scenario) (DuelResult, error) {
	var res DuelResult

	a, err := sc.Attacker.Character(1)
	if err != nil {
		return res, err
	}
	d, err := sc.Defender.Character(2)
	if err != nil {
		return res, err
	}

	sides := []struct {
		self, enemy *model.Character
		hit         combat.Hit
		def         Combatant
		regen       vitals.Regen
	}{
		{self: a, enemy: d, hit: sc.Attacker.Attack(), def: sc.Attacker},
		{self: d, enemy: a, hit: sc.Defender.Attack(), def: sc.Defender},
	}

	applier := logApplier{}
	for res.Rounds < sc.MaxRounds {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Rounds++

		for i := range sides {
			s := &sides[i]
			r := combat.Resolve(rules, rng, applier, s.self, s.enemy, s.hit)
			slog.Info("round",
				"round", res.Rounds,
				"attacker", s.self.Name,
				"defender", s.enemy.Name,
				"type", r.AmountType,
				"damage", r.Damage,
				"defender_hp", s.enemy.CurrentHP())
			if r.Killed {
				winner := sides[i]
				loser := sides[1-i]
				res.WinnerName = winner.self.Name
				reward(rules, rng, sc.RewardMultiplier, winner.self, loser.self, loser.def, &res)
				return res, nil
			}
		}

		for i := range sides {
			sides[i].regen.Tick(rules, sides[i].self, model.Movement{State: model.MovementGrounded}, roundDuration)
		}
	}

	slog.Info("round limit reached", "rounds", res.Rounds)
	return res, nil
}

func reward(rules *gamerule.Rules, rng gamerule.Random, multiplier float64, winner, loser *model.Character, loserDef Combatant, res *DuelResult) {
	if loser.IsPlayer() {
		res.ExpLost = progression.ApplyDeathPenalty(rules, loser)
	}

	var r model.Reward
	if loser.Role == model.RoleMonster {
		r = progression.MakeMonsterReward(rng, rules.Catalog.Monster(loserDef.MonsterID), loser.Level)
	}
	if r.Exp == 0 && r.Gold == 0 && len(r.Currencies) == 0 {
		return
	}

	res.RewardedExp, res.LeveledUp = progression.RewardExp(rules, winner, r, multiplier, model.RewardKillMonster)
	res.RewardedGold = progression.RewardCurrencies(rules, winner, r, multiplier, model.RewardKillMonster)
}
