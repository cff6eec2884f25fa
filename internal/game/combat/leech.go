package combat

import (
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// Leech is what the attacker drained from one damage application.
type Leech struct {
	HP      int32
	MP      int32
	Stamina int32
}

// ApplyLeech converts a fraction of dealt damage into resources for the
// attacker. HP leech heals the attacker only: the damage already took the
// defender's HP. MP and stamina leech move the amount from the defender.
// Every pool is clamped to [0, max] afterwards.
func ApplyLeech(attacker, defender *model.Character, damage int32) Leech {
	stats := attacker.Stats
	out := Leech{
		HP:      mathutil.CeilToInt32(float64(damage) * stats.HPLeechRate),
		MP:      mathutil.CeilToInt32(float64(damage) * stats.MPLeechRate),
		Stamina: mathutil.CeilToInt32(float64(damage) * stats.StaminaLeechRate),
	}

	if out.HP != 0 {
		attacker.AddCurrent(model.ResourceHP, out.HP)
	}
	if out.MP != 0 {
		attacker.AddCurrent(model.ResourceMP, out.MP)
		defender.AddCurrent(model.ResourceMP, -out.MP)
	}
	if out.Stamina != 0 {
		attacker.AddCurrent(model.ResourceStamina, out.Stamina)
		defender.AddCurrent(model.ResourceStamina, -out.Stamina)
	}
	return out
}
