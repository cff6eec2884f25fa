package vitals

import (
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// LimitWeight is the carry weight limit.
func LimitWeight(c *model.Character) float64 {
	return c.Stats.WeightLimit
}

// TotalWeight sums item weight x amount over equipment, both hands and the
// bag. Items with unknown definitions weigh nothing.
func TotalWeight(rules *gamerule.Rules, c *model.Character) float64 {
	var total float64
	add := func(item *model.CharacterItem) {
		if item.IsEmpty() {
			return
		}
		if def := rules.Catalog.Item(item.DataID); def != nil {
			total += def.Weight * float64(item.Amount)
		}
	}
	for _, item := range c.EquipItems {
		add(item)
	}
	for _, item := range c.NonEquipItems {
		add(item)
	}
	add(c.EquipWeapons.RightHand)
	add(c.EquipWeapons.LeftHand)
	return total
}

// IsOverweight reports whether the carried weight exceeds the limit.
func IsOverweight(rules *gamerule.Rules, c *model.Character) bool {
	return TotalWeight(rules, c) > LimitWeight(c)
}

// LimitSlot is the bag slot limit: the slot limit stat plus the base limit.
func LimitSlot(rules *gamerule.Rules, c *model.Character) int32 {
	return c.Stats.SlotLimit + rules.Config.BaseSlotLimit
}

// TotalSlot counts occupied bag slots.
func TotalSlot(c *model.Character) int32 {
	var n int32
	for _, item := range c.NonEquipItems {
		if !item.IsEmpty() {
			n++
		}
	}
	return n
}

// EquipmentStatsRate scales an item's stats by its wear. Items without
// durability always give full stats.
//
//	rate > .50  -> 1
//	rate > .30  -> .75
//	rate > .15  -> .5
//	rate > .05  -> .25
//	otherwise   -> 0
func EquipmentStatsRate(rules *gamerule.Rules, item *model.CharacterItem) float64 {
	maxDurability := rules.Catalog.MaxDurability(item)
	if maxDurability <= 0 {
		return 1
	}
	rate := item.Durability / maxDurability
	switch {
	case rate > 0.5:
		return 1
	case rate > 0.3:
		return 0.75
	case rate > 0.15:
		return 0.5
	case rate > 0.05:
		return 0.25
	default:
		return 0
	}
}
