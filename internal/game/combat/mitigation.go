package combat

import (
	"math"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// ReduceByResistance runs one element's damage through resistance and then
// armor. A nil element means the catalog's default element.
//
// Resistance is capped by the element's MaxResistanceAmount but has no lower
// bound: negative resistance increases damage.
// Armor formula: damage * 100 / (100 + armor).
func ReduceByResistance(rules *gamerule.Rules, resistances, armors model.ElementAmounts, damage float64, element *model.DamageElement) float64 {
	if element == nil {
		element = rules.Catalog.DefaultElement()
		if element == nil {
			return damage
		}
	}

	if resistance, ok := resistances[element.ID]; ok {
		if resistance > element.MaxResistanceAmount {
			resistance = element.MaxResistanceAmount
		}
		damage -= damage * resistance
	}

	if armor, ok := armors[element.ID]; ok {
		damage *= 100 / (100 + armor)
	}

	return damage
}

// TotalDamage converts the summed damage of all elements to the integer that
// is applied to HP. It truncates toward zero, it does not round.
func TotalDamage(total float64) int32 {
	switch {
	case math.IsNaN(total):
		return 0
	case total >= math.MaxInt32:
		return math.MaxInt32
	case total <= math.MinInt32:
		return math.MinInt32
	}
	return int32(total)
}

// RandomAttackDamage rolls a raw amount from an inclusive range.
func RandomAttackDamage(rng gamerule.Random, amount model.MinMax) float64 {
	lo, hi := amount.Min, amount.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}
