package data

import "github.com/udisondev/gamerule/internal/model"

// NpcSellItem is one entry of an NPC shop.
// SellPrices lists extra currencies charged per unit on top of gold.
type NpcSellItem struct {
	ItemID     int32                  `yaml:"item_id"`
	SellPrice  int64                  `yaml:"sell_price"`
	SellPrices []model.CurrencyAmount `yaml:"sell_prices"`
}

// ShopDef is an NPC shop.
type ShopDef struct {
	ID    int32         `yaml:"id"`
	Name  string        `yaml:"name"`
	Items []NpcSellItem `yaml:"items"`
}

// RefineLevel is the price of refining an item to a level.
type RefineLevel struct {
	Level       int32   `yaml:"level"`
	RequireGold int64   `yaml:"require_gold"`
	SuccessRate float64 `yaml:"success_rate"`
}

// RepairPrice is the price of repairing an item whose durability rate is at
// or below MaxDurabilityRate.
type RepairPrice struct {
	MaxDurabilityRate float64 `yaml:"max_durability_rate"`
	RequireGold       int64   `yaml:"require_gold"`
}

// CraftDef is a crafting recipe.
type CraftDef struct {
	ID           int32  `yaml:"id"`
	Name         string `yaml:"name"`
	ResultItemID int32  `yaml:"result_item_id"`
	ResultAmount int32  `yaml:"result_amount"`
	RequireGold  int64  `yaml:"require_gold"`
}
