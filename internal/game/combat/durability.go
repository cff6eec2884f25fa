package combat

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/config"
	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// CombatAmountType is the category of a damage application. It selects the
// durability decrease rates.
type CombatAmountType int8

const (
	AmountNormal CombatAmountType = iota
	AmountBlocked
	AmountCritical
	AmountMiss
)

// String returns the category name used in logs.
func (t CombatAmountType) String() string {
	switch t {
	case AmountNormal:
		return "normal"
	case AmountBlocked:
		return "blocked"
	case AmountCritical:
		return "critical"
	case AmountMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// AmountTypeOf maps an outcome to its category. A block takes precedence
// over a critical.
func AmountTypeOf(o Outcome) CombatAmountType {
	switch {
	case !o.Hit:
		return AmountMiss
	case o.Blocked:
		return AmountBlocked
	case o.Critical:
		return AmountCritical
	default:
		return AmountNormal
	}
}

// DecreaseAmounts returns the configured decrease for a category.
func DecreaseAmounts(table config.DurabilityTable, t CombatAmountType) config.DurabilityDecrease {
	switch t {
	case AmountBlocked:
		return table.Blocked
	case AmountCritical:
		return table.Critical
	case AmountMiss:
		return table.Miss
	default:
		return table.Normal
	}
}

// BrokenItem records an item removed from its slot because it broke.
type BrokenItem struct {
	Owner *model.Character
	Item  *model.CharacterItem
	Slot  string
}

// decreaseDurability lowers durability of an equipment item and reports
// whether it must be destroyed. Items without an equipment definition are
// left untouched.
func decreaseDurability(def *data.ItemDef, item *model.CharacterItem, amount float64) (destroy bool) {
	if !def.IsEquipment() {
		return false
	}
	return item.DecreaseDurability(amount) <= 0 && def.DestroyIfBroken
}

// DecreaseWeaponsDurability wears both hand slots that hold a weapon with a
// positive max durability.
func DecreaseWeaponsDurability(rules *gamerule.Rules, c *model.Character, amount float64) []BrokenItem {
	return decreaseHands(rules, c, amount, (*data.ItemDef).IsWeapon)
}

// DecreaseShieldsDurability wears both hand slots that hold a shield with a
// positive max durability.
func DecreaseShieldsDurability(rules *gamerule.Rules, c *model.Character, amount float64) []BrokenItem {
	return decreaseHands(rules, c, amount, (*data.ItemDef).IsShield)
}

func decreaseHands(rules *gamerule.Rules, c *model.Character, amount float64, accept func(*data.ItemDef) bool) []BrokenItem {
	var broken []BrokenItem
	hands := []struct {
		slot string
		item **model.CharacterItem
	}{
		{"right_hand", &c.EquipWeapons.RightHand},
		{"left_hand", &c.EquipWeapons.LeftHand},
	}
	for _, h := range hands {
		item := *h.item
		if item.IsEmpty() {
			continue
		}
		def := rules.Catalog.Item(item.DataID)
		if !accept(def) || def.MaxDurability <= 0 {
			continue
		}
		if decreaseDurability(def, item, amount) {
			*h.item = nil
			broken = append(broken, BrokenItem{Owner: c, Item: item, Slot: h.slot})
			logBroken(c, def, h.slot)
		}
	}
	return broken
}

// DecreaseArmorsDurability wears every armor-slot item with a positive max
// durability. The list is walked backwards so removals keep indexes valid.
func DecreaseArmorsDurability(rules *gamerule.Rules, c *model.Character, amount float64) []BrokenItem {
	var broken []BrokenItem
	for i := len(c.EquipItems) - 1; i >= 0; i-- {
		item := c.EquipItems[i]
		if item.IsEmpty() {
			continue
		}
		def := rules.Catalog.Item(item.DataID)
		if def == nil || def.MaxDurability <= 0 {
			continue
		}
		if decreaseDurability(def, item, amount) {
			c.EquipItems = append(c.EquipItems[:i], c.EquipItems[i+1:]...)
			broken = append(broken, BrokenItem{Owner: c, Item: item, Slot: "armor"})
			logBroken(c, def, "armor")
		}
	}
	return broken
}

func logBroken(c *model.Character, def *data.ItemDef, slot string) {
	slog.Info("equipment destroyed",
		"character", c.Name,
		"item", def.ID,
		"name", def.Name,
		"slot", slot)
}
