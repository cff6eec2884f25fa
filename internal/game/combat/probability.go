package combat

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// Chance bounds shared by every clamped probability. Not configurable.
const (
	MinChance = 0.05
	MaxChance = 0.95
)

// baseHitChance is scaled down by the accuracy and level ratios.
// With both ratios at 1/2 it yields an even 50%.
const baseHitChance = 2.0

// Outcome is the result of one outcome roll. The flags are rolled
// independently and are not mutually exclusive.
type Outcome struct {
	Hit      bool
	Critical bool
	Blocked  bool
}

// HitChance returns the attacker's chance to hit the defender.
// A ratio whose operands include a zero is skipped, not treated as zero.
func HitChance(attacker, defender *model.Character) float64 {
	acc := attacker.Stats.Accuracy
	eva := defender.Stats.Evasion
	atkLvl := attacker.Level
	defLvl := defender.Level

	chance := baseHitChance
	if acc != 0 && eva != 0 {
		chance *= acc / (acc + eva)
	}
	if atkLvl != 0 && defLvl != 0 {
		chance *= float64(atkLvl) / float64(atkLvl+defLvl)
	}
	return mathutil.Clamp(chance, MinChance, MaxChance)
}

// CriticalChance returns the attacker's critical rate, clamped.
func CriticalChance(attacker, _ *model.Character) float64 {
	return mathutil.Clamp(attacker.Stats.CriRate, MinChance, MaxChance)
}

// BlockChance returns the defender's block rate, clamped.
func BlockChance(_, defender *model.Character) float64 {
	return mathutil.Clamp(defender.Stats.BlockRate, MinChance, MaxChance)
}

// CriticalDamage scales damage by the attacker's critical damage rate.
func CriticalDamage(attacker, _ *model.Character, damage float64) float64 {
	return damage * attacker.Stats.CriDmgRate
}

// BlockedDamage removes the defender's clamped block damage rate from damage.
func BlockedDamage(_, defender *model.Character, damage float64) float64 {
	rate := mathutil.Clamp(defender.Stats.BlockDmgRate, MinChance, MaxChance)
	return damage - damage*rate
}

// ResolveOutcome rolls critical, hit and block, in that order, each with its
// own draw. Damage without an attacker (environment, falling) always hits
// and never crits or gets blocked.
func ResolveOutcome(rules *gamerule.Rules, rng gamerule.Random, attacker, defender *model.Character) Outcome {
	if attacker == nil {
		return Outcome{Hit: true}
	}

	var out Outcome
	out.Critical = rng.Float64() <= CriticalChance(attacker, defender)
	out.Hit = rng.Float64() <= HitChance(attacker, defender)
	if !out.Hit && out.Critical && rules.Config.AlwaysHitWhenCritical {
		out.Hit = true
	}
	out.Blocked = rng.Float64() <= BlockChance(attacker, defender)

	slog.Debug("outcome rolled",
		"attacker", attacker.Name,
		"defender", defender.Name,
		"hit", out.Hit,
		"critical", out.Critical,
		"blocked", out.Blocked)
	return out
}
