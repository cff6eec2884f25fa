package ledger_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gamerule/internal/game/ledger"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

func playerWith(gold int64, currencies map[string]int64) *model.Character {
	p := testutil.NewPlayer("p")
	p.Player.Gold = gold
	for k, v := range currencies {
		p.Player.Currencies[k] = v
	}
	return p
}

func TestCanAfford(t *testing.T) {
	price := ledger.Price{
		Gold: 100,
		Currencies: []model.CurrencyAmount{
			{CurrencyID: "token", Amount: 2},
			{CurrencyID: "token", Amount: 1},
		},
	}
	tests := []struct {
		name string
		c    *model.Character
		want bool
	}{
		{"enough of everything", playerWith(100, map[string]int64{"token": 3}), true},
		{"short on gold", playerWith(99, map[string]int64{"token": 3}), false},
		{"duplicate currency entries are summed", playerWith(100, map[string]int64{"token": 2}), false},
		{"missing currency", playerWith(1000, nil), false},
		{"monster", testutil.NewMonster("m"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.CanAfford(tt.c, price))
		})
	}

	assert.True(t, ledger.CanAfford(testutil.NewMonster("m"), ledger.Price{}))
}

func TestBuyItem(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	shop := rules.Catalog.Shop(testutil.BlacksmithID)
	require.NotNil(t, shop)
	gem := shop.Items[1]

	p := playerWith(1000, map[string]int64{"token": 2})
	require.True(t, ledger.CanBuyItem(p, gem, 2))
	assert.False(t, ledger.CanBuyItem(p, gem, 3), "needs 3 tokens")
	assert.False(t, ledger.CanBuyItem(p, gem, 0))

	ledger.BuyItem(p, gem, 2)

	assert.Equal(t, int64(400), p.Player.Gold)
	assert.Zero(t, p.Player.Currency("token"))
	assert.False(t, ledger.CanBuyItem(p, gem, 1))
}

func TestBuyItemPrice_Saturates(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	entry := rules.Catalog.Shop(testutil.BlacksmithID).Items[0]
	entry.SellPrice = math.MaxInt64 / 2

	p := ledger.BuyItemPrice(entry, 3)

	assert.Equal(t, int64(math.MaxInt64), p.Gold)
}

func TestSellItem(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	p := playerWith(10, nil)

	assert.Equal(t, int64(80), ledger.SellItem(rules, p, testutil.SwordID, 2))
	assert.Equal(t, int64(90), p.Player.Gold)

	assert.Zero(t, ledger.SellItem(rules, p, 4242, 1), "unknown item")
	assert.Zero(t, ledger.SellItem(rules, p, testutil.SwordID, 0))
	assert.Zero(t, ledger.SellItem(rules, testutil.NewMonster("m"), testutil.SwordID, 1))
	assert.Equal(t, int64(90), p.Player.Gold)

	p.Player.Gold = math.MaxInt64 - 5
	ledger.SellItem(rules, p, testutil.SwordID, 1)
	assert.Equal(t, int64(math.MaxInt64), p.Player.Gold)
}

func TestRefineItem(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	sword := testutil.Item(t, rules.Catalog, testutil.SwordID)
	p := playerWith(300, nil)

	require.True(t, ledger.CanRefineItem(rules, p, sword))
	ledger.RefineItem(rules, p, sword)
	assert.Equal(t, int64(200), p.Player.Gold)

	sword.Level = 1
	assert.False(t, ledger.CanRefineItem(rules, p, sword), "level 2 costs 250")

	sword.Level = 2
	_, ok := ledger.RefinePrice(rules, sword)
	assert.False(t, ok, "no level 3 entry")
	assert.False(t, ledger.CanRefineItem(rules, p, nil))
}

func TestRepairItem(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	tests := []struct {
		name       string
		durability float64
		wantGold   int64
	}{
		{"badly worn", 20, 80},
		{"worn", 50, 40},
		{"scratched", 99, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sword := testutil.Item(t, rules.Catalog, testutil.SwordID)
			sword.Durability = tt.durability

			price, ok := ledger.RepairPrice(rules, sword)
			require.True(t, ok)
			assert.Equal(t, tt.wantGold, price.Gold)

			p := playerWith(100, nil)
			require.True(t, ledger.CanRepairItem(rules, p, sword))
			ledger.RepairItem(rules, p, sword)
			assert.Equal(t, 100-tt.wantGold, p.Player.Gold)
			assert.InDelta(t, 100, sword.Durability, 1e-9)
		})
	}

	ring := testutil.Item(t, rules.Catalog, testutil.UnbreakableID)
	assert.False(t, ledger.CanRepairItem(rules, playerWith(100, nil), ring))
}

func TestCraftItem(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	craft := rules.Catalog.Craft(testutil.SwordCraftID)
	p := playerWith(60, nil)

	require.True(t, ledger.CanCraftItem(p, craft))
	ledger.CraftItem(p, craft)
	assert.Zero(t, p.Player.Gold)
	assert.False(t, ledger.CanCraftItem(p, craft))
	assert.False(t, ledger.CanCraftItem(p, nil))
}

func TestConfiguredPrices(t *testing.T) {
	rules := testutil.NewRules(t, nil)
	rules.Config.Prices.EnhancerRemovalGold = 100
	rules.Config.Prices.CreateGuildGold = 1000
	p := playerWith(1050, nil)

	require.True(t, ledger.CanCreateGuild(rules, p))
	ledger.CreateGuild(rules, p)
	assert.Equal(t, int64(50), p.Player.Gold)

	assert.False(t, ledger.CanRemoveEnhancer(rules, p))
	p.Player.Gold = 100
	require.True(t, ledger.CanRemoveEnhancer(rules, p))
	ledger.RemoveEnhancer(rules, p)
	assert.Zero(t, p.Player.Gold)
}
