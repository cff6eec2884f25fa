package testutil

import (
	"testing"

	"github.com/udisondev/gamerule/internal/config"
	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// Ids registered by NewCatalog.
const (
	SwordID       int32 = 1001
	ShieldID      int32 = 1002
	VestID        int32 = 1003
	HelmID        int32 = 1004
	UnbreakableID int32 = 1005
	GemID         int32 = 2001
	ShardID       int32 = 2002
	PeltID        int32 = 3001
	BattleCryID   int32 = 1
	ThornSkinID   int32 = 1
	PowerStrikeID int32 = 2
	GrayWolfID    int32 = 1
	WolfHuntID    int32 = 1
	BlacksmithID  int32 = 1
	SwordCraftID  int32 = 1
)

// Element ids registered by NewCatalog.
const (
	ElementPhys = "physical"
	ElementFire = "fire"
)

// Effect ids of the fixture sources, one per source and trigger.
const (
	EffectSwordEnemyAttacking int32 = 1
	EffectVestSelfAttacked    int32 = 2
	EffectSwordSelfAttacked   int32 = 3
	EffectHelmSelfAttacking   int32 = 4
	EffectShieldEnemyAttacked int32 = 5
	EffectGemEnemyAttacking   int32 = 10
	EffectShardEnemyAttacking int32 = 11
	EffectBuffSelfAttacking   int32 = 20
	EffectSkillEnemyAttacked  int32 = 30
	EffectSkillEnemyAttacking int32 = 31
)

func effects(ids ...int32) []data.StatusEffectApplying {
	out := make([]data.StatusEffectApplying, 0, len(ids))
	for _, id := range ids {
		out = append(out, data.StatusEffectApplying{EffectID: id, Level: 1})
	}
	return out
}

// NewCatalog builds a small catalog: physical (default, cap .7) and fire
// (cap .5) elements, a sword, shield, vest, helm, an unbreakable ring, a gem
// with a nested shard, a buff, a passive and an active skill, a monster,
// a quest, a shop, a recipe, refine and repair prices and the experience
// table [100, 150, 225].
func NewCatalog(tb testing.TB) *data.Catalog {
	tb.Helper()
	c := data.NewCatalog()
	must := func(err error) {
		tb.Helper()
		if err != nil {
			tb.Fatalf("building catalog: %v", err)
		}
	}

	must(c.AddElement(model.DamageElement{ID: ElementPhys, Name: "Physical", MaxResistanceAmount: 0.7}))
	must(c.AddElement(model.DamageElement{ID: ElementFire, Name: "Fire", MaxResistanceAmount: 0.5}))

	must(c.AddItem(data.ItemDef{
		ID: SwordID, Name: "Iron Sword", Kind: data.ItemKindWeapon,
		MaxDurability: 100, DestroyIfBroken: true, Weight: 4, SellPrice: 40,
		StatusEffects: data.StatusEffects{
			EnemyWhenAttacking: effects(EffectSwordEnemyAttacking),
			SelfWhenAttacked:   effects(EffectSwordSelfAttacked),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: ShieldID, Name: "Oak Shield", Kind: data.ItemKindShield,
		MaxDurability: 80, Weight: 6, SellPrice: 25,
		StatusEffects: data.StatusEffects{
			EnemyWhenAttacked: effects(EffectShieldEnemyAttacked),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: VestID, Name: "Leather Vest", Kind: data.ItemKindArmor,
		MaxDurability: 60, DestroyIfBroken: true, Weight: 3, SellPrice: 30,
		StatusEffects: data.StatusEffects{
			SelfWhenAttacked: effects(EffectVestSelfAttacked),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: HelmID, Name: "Iron Helm", Kind: data.ItemKindArmor,
		MaxDurability: 50, Weight: 2, SellPrice: 20,
		StatusEffects: data.StatusEffects{
			SelfWhenAttacking: effects(EffectHelmSelfAttacking),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: UnbreakableID, Name: "Ring", Kind: data.ItemKindArmor, Weight: 0.1,
	}))
	must(c.AddItem(data.ItemDef{
		ID: GemID, Name: "Ember Gem", Kind: data.ItemKindSocketEnhancer,
		Weight: 0.1, SellPrice: 100, Sockets: []int32{ShardID},
		StatusEffects: data.StatusEffects{
			EnemyWhenAttacking: effects(EffectGemEnemyAttacking),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: ShardID, Name: "Ember Shard", Kind: data.ItemKindSocketEnhancer,
		Weight: 0.05, SellPrice: 20,
		StatusEffects: data.StatusEffects{
			EnemyWhenAttacking: effects(EffectShardEnemyAttacking),
		},
	}))
	must(c.AddItem(data.ItemDef{
		ID: PeltID, Name: "Wolf Pelt", Kind: data.ItemKindMisc, Weight: 0.5, SellPrice: 5,
	}))

	must(c.AddBuff(data.BuffDef{
		ID: BattleCryID, Name: "Battle Cry",
		StatusEffects: data.StatusEffects{SelfWhenAttacking: effects(EffectBuffSelfAttacking)},
	}))
	must(c.AddSkill(data.SkillDef{
		ID: ThornSkinID, Name: "Thorn Skin", Passive: true,
		Buff: data.BuffDef{ID: 101, StatusEffects: data.StatusEffects{
			EnemyWhenAttacked:  effects(EffectSkillEnemyAttacked),
			EnemyWhenAttacking: effects(EffectSkillEnemyAttacking),
		}},
	}))
	must(c.AddSkill(data.SkillDef{
		ID: PowerStrikeID, Name: "Power Strike",
		Buff: data.BuffDef{ID: 102, StatusEffects: data.StatusEffects{
			EnemyWhenAttacking: effects(99),
		}},
	}))

	must(c.AddMonster(data.MonsterDef{
		ID: GrayWolfID, Name: "Gray Wolf",
		Exp: data.IncrementalMinMaxInt{
			Base:             data.MinMaxInt{Min: 20, Max: 30},
			IncreasePerLevel: data.MinMaxInt{Min: 5, Max: 6},
		},
		Gold: data.IncrementalMinMaxInt{
			Base: data.MinMaxInt{Min: 5, Max: 5},
		},
	}))
	must(c.AddQuest(data.QuestDef{
		ID: WolfHuntID, Name: "Wolf Hunt", RewardExp: 150, RewardGold: 50,
		RewardCurrencies: []model.CurrencyAmount{{CurrencyID: "token", Amount: 2}},
	}))
	must(c.AddShop(data.ShopDef{
		ID: BlacksmithID, Name: "Blacksmith",
		Items: []data.NpcSellItem{
			{ItemID: SwordID, SellPrice: 120},
			{ItemID: GemID, SellPrice: 300, SellPrices: []model.CurrencyAmount{{CurrencyID: "token", Amount: 1}}},
		},
	}))
	must(c.AddCraft(data.CraftDef{
		ID: SwordCraftID, Name: "Iron Sword", ResultItemID: SwordID, ResultAmount: 1, RequireGold: 60,
	}))
	c.SetRefineLevels([]data.RefineLevel{
		{Level: 1, RequireGold: 100, SuccessRate: 0.9},
		{Level: 2, RequireGold: 250, SuccessRate: 0.7},
	})
	c.SetRepairPrices([]data.RepairPrice{
		{MaxDurabilityRate: 1, RequireGold: 10},
		{MaxDurabilityRate: 0.25, RequireGold: 80},
		{MaxDurabilityRate: 0.75, RequireGold: 40},
	})
	c.Exp = data.ExperienceTable{100, 150, 225}
	return c
}

// NewRules builds Rules over NewCatalog with the default gameplay config
// and the given guilds (nil means none).
func NewRules(tb testing.TB, guilds gamerule.GuildLookup) *gamerule.Rules {
	tb.Helper()
	return gamerule.New(config.DefaultGameplay(), NewCatalog(tb), guilds)
}

// DefaultVitals is the max vitals of fixture characters.
var DefaultVitals = model.Vitals{HP: 1000, MP: 200, Stamina: 100, Food: 100, Water: 100}

// NewPlayer creates a level 1 player with DefaultVitals.
func NewPlayer(name string) *model.Character {
	return model.NewPlayer(1, name, 1, DefaultVitals)
}

// NewMonster creates a level 1 wild monster with DefaultVitals.
func NewMonster(name string) *model.Character {
	return model.NewMonster(2, name, 1, model.SummonNone, DefaultVitals)
}

// Item creates a single item instance at full durability.
func Item(tb testing.TB, c *data.Catalog, id int32, sockets ...int32) *model.CharacterItem {
	tb.Helper()
	def := c.Item(id)
	if def == nil {
		tb.Fatalf("unknown fixture item %d", id)
	}
	return &model.CharacterItem{DataID: id, Amount: 1, Durability: def.MaxDurability, Sockets: sockets}
}
