// Package vitals holds the per-second resource rules: recovery, hunger and
// thirst decay, stamina drain while sprinting, plus carry limits, equipment
// wear penalties, respawn, fall damage and move speed rates.
package vitals

import (
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// IsHungry reports whether food is below the hunger threshold. Food only
// matters when it decays, and monsters never get hungry.
func IsHungry(rules *gamerule.Rules, c *model.Character) bool {
	return c.Role != model.RoleMonster &&
		rules.Config.Recovery.FoodDecreasePerSecond > 0 &&
		c.CurrentFood() < rules.Config.Hunger.HungryWhenFoodLowerThan
}

// IsThirsty reports whether water is below the thirst threshold.
func IsThirsty(rules *gamerule.Rules, c *model.Character) bool {
	return c.Role != model.RoleMonster &&
		rules.Config.Recovery.WaterDecreasePerSecond > 0 &&
		c.CurrentWater() < rules.Config.Hunger.ThirstyWhenWaterLowerThan
}

// RecoveryHPPerSecond is max HP x rate plus the HP recovery stat. Hungry
// characters do not recover HP.
func RecoveryHPPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if IsHungry(rules, c) {
		return 0
	}
	return float64(c.MaxHP())*rules.Config.Recovery.HPRatePerSecond + c.Stats.HPRecovery
}

// RecoveryMPPerSecond is max MP x rate plus the MP recovery stat. Thirsty
// characters do not recover MP.
func RecoveryMPPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if IsThirsty(rules, c) {
		return 0
	}
	return float64(c.Max(model.ResourceMP))*rules.Config.Recovery.MPRatePerSecond + c.Stats.MPRecovery
}

// RecoveryStaminaPerSecond is the flat stamina recovery plus the stat.
func RecoveryStaminaPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	return rules.Config.Recovery.StaminaPerSecond + c.Stats.StaminaRecovery
}

// DecreasingHPPerSecond is the HP lost to hunger and thirst.
func DecreasingHPPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if c.Role == model.RoleMonster {
		return 0
	}
	h := rules.Config.Hunger
	maxHP := float64(c.MaxHP())
	var out float64
	if IsHungry(rules, c) {
		out += maxHP * h.HPDecreaseRateWhenHungry
	}
	if IsThirsty(rules, c) {
		out += maxHP * h.HPDecreaseRateWhenThirsty
	}
	return out
}

// DecreasingMPPerSecond is the MP lost to hunger and thirst.
func DecreasingMPPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if c.Role == model.RoleMonster {
		return 0
	}
	h := rules.Config.Hunger
	maxMP := float64(c.Max(model.ResourceMP))
	var out float64
	if IsHungry(rules, c) {
		out += maxMP * h.MPDecreaseRateWhenHungry
	}
	if IsThirsty(rules, c) {
		out += maxMP * h.MPDecreaseRateWhenThirsty
	}
	return out
}

// DecreasingStaminaPerSecond drains stamina only while sprinting on the
// ground with a direction held.
func DecreasingStaminaPerSecond(rules *gamerule.Rules, mv model.Movement) float64 {
	if mv.Extra != model.ExtraMovementSprinting ||
		!mv.State.Has(model.MovementGrounded) ||
		!mv.State.IsMoving() {
		return 0
	}
	return rules.Config.Recovery.StaminaDecreasePerSecond
}

// DecreasingFoodPerSecond is the food decay; monsters do not eat.
func DecreasingFoodPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if c.Role == model.RoleMonster {
		return 0
	}
	return rules.Config.Recovery.FoodDecreasePerSecond
}

// DecreasingWaterPerSecond is the water decay; monsters do not drink.
func DecreasingWaterPerSecond(rules *gamerule.Rules, c *model.Character) float64 {
	if c.Role == model.RoleMonster {
		return 0
	}
	return rules.Config.Recovery.WaterDecreasePerSecond
}
