package testutil

import (
	"testing"

	"github.com/udisondev/gamerule/internal/model"
)

var allResources = []model.Resource{
	model.ResourceHP,
	model.ResourceMP,
	model.ResourceStamina,
	model.ResourceFood,
	model.ResourceWater,
}

// AssertPoolsClamped fails when any resource pool left [0, max].
func AssertPoolsClamped(tb testing.TB, c *model.Character) {
	tb.Helper()
	for _, r := range allResources {
		cur, m := c.Current(r), c.Max(r)
		if cur < 0 || cur > m {
			tb.Fatalf("%s %s = %d, want within [0, %d]", c.Name, r, cur, m)
		}
	}
}

// AssertDurabilityNonNegative fails when any equipped item has negative durability.
func AssertDurabilityNonNegative(tb testing.TB, c *model.Character) {
	tb.Helper()
	items := append([]*model.CharacterItem{c.EquipWeapons.RightHand, c.EquipWeapons.LeftHand}, c.EquipItems...)
	for _, item := range items {
		if item != nil && item.Durability < 0 {
			tb.Fatalf("%s item %d durability = %v, want >= 0", c.Name, item.DataID, item.Durability)
		}
	}
}
