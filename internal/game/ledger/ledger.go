// Package ledger checks and moves a player's gold and currencies for shop,
// refine, repair, craft and guild operations.
//
// Every debit has a Can* check. Callers must run the check first: debits
// do not verify funds and nothing is rolled back.
package ledger

import (
	"log/slog"
	"math"

	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// Price is an amount of gold plus auxiliary currencies.
type Price struct {
	Gold       int64
	Currencies []model.CurrencyAmount
}

// IsFree reports whether nothing is charged.
func (p Price) IsFree() bool {
	if p.Gold > 0 {
		return false
	}
	for _, c := range p.Currencies {
		if c.Amount > 0 {
			return false
		}
	}
	return true
}

// CanAfford reports whether the player holds at least p. Non-players afford
// nothing but free prices.
func CanAfford(c *model.Character, p Price) bool {
	if !c.IsPlayer() {
		return p.IsFree()
	}
	if c.Player.Gold < p.Gold {
		return false
	}
	need := make(map[string]int64, len(p.Currencies))
	for _, cur := range p.Currencies {
		need[cur.CurrencyID] += int64(cur.Amount)
	}
	for id, amount := range need {
		if c.Player.Currency(id) < amount {
			return false
		}
	}
	return true
}

// Debit removes p from the player's funds.
func Debit(c *model.Character, p Price) {
	if !c.IsPlayer() {
		return
	}
	c.Player.Gold -= p.Gold
	for _, cur := range p.Currencies {
		if cur.Amount == 0 {
			continue
		}
		if c.Player.Currencies == nil {
			c.Player.Currencies = make(map[string]int64)
		}
		c.Player.Currencies[cur.CurrencyID] -= int64(cur.Amount)
	}
}

// Credit adds gold to the player, saturating at the int64 maximum.
func Credit(c *model.Character, gold int64) {
	if !c.IsPlayer() || gold <= 0 {
		return
	}
	c.Player.Gold = mathutil.SaturatingAdd(c.Player.Gold, gold)
}

// BuyItemPrice is the total price of amount units of a shop entry.
func BuyItemPrice(entry data.NpcSellItem, amount int32) Price {
	if amount <= 0 {
		return Price{}
	}
	p := Price{Gold: saturatingMul(entry.SellPrice, int64(amount))}
	for _, cur := range entry.SellPrices {
		p.Currencies = append(p.Currencies, model.CurrencyAmount{
			CurrencyID: cur.CurrencyID,
			Amount:     int32(min(saturatingMul(int64(cur.Amount), int64(amount)), math.MaxInt32)),
		})
	}
	return p
}

// CanBuyItem reports whether the player can pay for amount units.
func CanBuyItem(c *model.Character, entry data.NpcSellItem, amount int32) bool {
	return amount > 0 && CanAfford(c, BuyItemPrice(entry, amount))
}

// BuyItem charges the player for amount units.
func BuyItem(c *model.Character, entry data.NpcSellItem, amount int32) {
	p := BuyItemPrice(entry, amount)
	Debit(c, p)
	slog.Debug("item bought",
		"character", c.Name,
		"item", entry.ItemID,
		"amount", amount,
		"gold", p.Gold)
}

// SellItem credits the definition's sell price times amount. Unknown items
// and non-positive amounts credit nothing. Returns the gold credited.
func SellItem(rules *gamerule.Rules, c *model.Character, itemID, amount int32) int64 {
	def := rules.Catalog.Item(itemID)
	if def == nil || amount <= 0 || !c.IsPlayer() {
		return 0
	}
	gold := saturatingMul(def.SellPrice, int64(amount))
	Credit(c, gold)
	slog.Debug("item sold",
		"character", c.Name,
		"item", itemID,
		"amount", amount,
		"gold", gold)
	return gold
}

// RefinePrice returns the price of refining item one level up, false when
// the next level has no price entry.
func RefinePrice(rules *gamerule.Rules, item *model.CharacterItem) (Price, bool) {
	if item.IsEmpty() {
		return Price{}, false
	}
	lvl, ok := rules.Catalog.RefineLevel(item.Level + 1)
	if !ok {
		return Price{}, false
	}
	return Price{Gold: lvl.RequireGold}, true
}

// CanRefineItem reports whether item can be refined and the player can pay.
func CanRefineItem(rules *gamerule.Rules, c *model.Character, item *model.CharacterItem) bool {
	p, ok := RefinePrice(rules, item)
	return ok && CanAfford(c, p)
}

// RefineItem charges the refine price. The success roll belongs to the caller.
func RefineItem(rules *gamerule.Rules, c *model.Character, item *model.CharacterItem) {
	if p, ok := RefinePrice(rules, item); ok {
		Debit(c, p)
	}
}

// RepairPrice returns the repair price for item's current durability rate,
// false when the item has no max durability or no band covers it.
func RepairPrice(rules *gamerule.Rules, item *model.CharacterItem) (Price, bool) {
	maxDurability := rules.Catalog.MaxDurability(item)
	if maxDurability <= 0 {
		return Price{}, false
	}
	rate := item.Durability / maxDurability
	band, ok := rules.Catalog.RepairPrice(rate)
	if !ok {
		return Price{}, false
	}
	return Price{Gold: band.RequireGold}, true
}

// CanRepairItem reports whether item can be repaired and the player can pay.
func CanRepairItem(rules *gamerule.Rules, c *model.Character, item *model.CharacterItem) bool {
	p, ok := RepairPrice(rules, item)
	return ok && CanAfford(c, p)
}

// RepairItem charges the repair price and restores full durability.
func RepairItem(rules *gamerule.Rules, c *model.Character, item *model.CharacterItem) {
	p, ok := RepairPrice(rules, item)
	if !ok {
		return
	}
	Debit(c, p)
	item.Durability = rules.Catalog.MaxDurability(item)
}

// CanCraftItem reports whether the player can pay for a recipe.
func CanCraftItem(c *model.Character, craft *data.CraftDef) bool {
	return craft != nil && CanAfford(c, Price{Gold: craft.RequireGold})
}

// CraftItem charges the recipe price.
func CraftItem(c *model.Character, craft *data.CraftDef) {
	if craft == nil {
		return
	}
	Debit(c, Price{Gold: craft.RequireGold})
}

// CanRemoveEnhancer reports whether the player can pay the configured
// enhancer removal price.
func CanRemoveEnhancer(rules *gamerule.Rules, c *model.Character) bool {
	return CanAfford(c, Price{Gold: rules.Config.Prices.EnhancerRemovalGold})
}

// RemoveEnhancer charges the enhancer removal price.
func RemoveEnhancer(rules *gamerule.Rules, c *model.Character) {
	Debit(c, Price{Gold: rules.Config.Prices.EnhancerRemovalGold})
}

// CanCreateGuild reports whether the player can pay the guild creation price.
func CanCreateGuild(rules *gamerule.Rules, c *model.Character) bool {
	return CanAfford(c, Price{Gold: rules.Config.Prices.CreateGuildGold})
}

// CreateGuild charges the guild creation price.
func CreateGuild(rules *gamerule.Rules, c *model.Character) {
	Debit(c, Price{Gold: rules.Config.Prices.CreateGuildGold})
	slog.Info("guild creation paid",
		"character", c.Name,
		"gold", rules.Config.Prices.CreateGuildGold)
}
