package data

import (
	"fmt"
	"sort"

	"github.com/udisondev/gamerule/internal/model"
)

// Catalog is the read-only registry of static definitions the rule engine
// resolves ids against. Lookups of unknown ids return nil; callers skip them.
type Catalog struct {
	elements       map[string]*model.DamageElement
	defaultElement *model.DamageElement

	items    map[int32]*ItemDef
	buffs    map[int32]*BuffDef
	skills   map[int32]*SkillDef
	monsters map[int32]*MonsterDef
	quests   map[int32]*QuestDef
	shops    map[int32]*ShopDef
	crafts   map[int32]*CraftDef

	refineLevels []RefineLevel
	repairPrices []RepairPrice

	Exp ExperienceTable
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		elements: make(map[string]*model.DamageElement),
		items:    make(map[int32]*ItemDef),
		buffs:    make(map[int32]*BuffDef),
		skills:   make(map[int32]*SkillDef),
		monsters: make(map[int32]*MonsterDef),
		quests:   make(map[int32]*QuestDef),
		shops:    make(map[int32]*ShopDef),
		crafts:   make(map[int32]*CraftDef),
	}
}

// AddElement registers a damage element. The first element added becomes
// the default unless SetDefaultElement is called.
func (c *Catalog) AddElement(e model.DamageElement) error {
	if _, ok := c.elements[e.ID]; ok {
		return fmt.Errorf("element %q: %w", e.ID, ErrDuplicateID)
	}
	c.elements[e.ID] = &e
	if c.defaultElement == nil {
		c.defaultElement = &e
	}
	return nil
}

// SetDefaultElement selects the element used when an attack names none.
func (c *Catalog) SetDefaultElement(id string) error {
	e, ok := c.elements[id]
	if !ok {
		return fmt.Errorf("default element %q: %w", id, ErrUnknownElement)
	}
	c.defaultElement = e
	return nil
}

// AddItem registers an item definition.
func (c *Catalog) AddItem(d ItemDef) error {
	if _, ok := c.items[d.ID]; ok {
		return fmt.Errorf("item %d: %w", d.ID, ErrDuplicateID)
	}
	c.items[d.ID] = &d
	return nil
}

// AddBuff registers a buff definition.
func (c *Catalog) AddBuff(d BuffDef) error {
	if _, ok := c.buffs[d.ID]; ok {
		return fmt.Errorf("buff %d: %w", d.ID, ErrDuplicateID)
	}
	c.buffs[d.ID] = &d
	return nil
}

// AddSkill registers a skill definition.
func (c *Catalog) AddSkill(d SkillDef) error {
	if _, ok := c.skills[d.ID]; ok {
		return fmt.Errorf("skill %d: %w", d.ID, ErrDuplicateID)
	}
	c.skills[d.ID] = &d
	return nil
}

// AddMonster registers a monster definition.
func (c *Catalog) AddMonster(d MonsterDef) error {
	if _, ok := c.monsters[d.ID]; ok {
		return fmt.Errorf("monster %d: %w", d.ID, ErrDuplicateID)
	}
	c.monsters[d.ID] = &d
	return nil
}

// AddQuest registers a quest definition.
func (c *Catalog) AddQuest(d QuestDef) error {
	if _, ok := c.quests[d.ID]; ok {
		return fmt.Errorf("quest %d: %w", d.ID, ErrDuplicateID)
	}
	c.quests[d.ID] = &d
	return nil
}

// AddShop registers an NPC shop.
func (c *Catalog) AddShop(d ShopDef) error {
	if _, ok := c.shops[d.ID]; ok {
		return fmt.Errorf("shop %d: %w", d.ID, ErrDuplicateID)
	}
	c.shops[d.ID] = &d
	return nil
}

// AddCraft registers a crafting recipe.
func (c *Catalog) AddCraft(d CraftDef) error {
	if _, ok := c.crafts[d.ID]; ok {
		return fmt.Errorf("craft %d: %w", d.ID, ErrDuplicateID)
	}
	c.crafts[d.ID] = &d
	return nil
}

// SetRefineLevels replaces the refine price list.
func (c *Catalog) SetRefineLevels(levels []RefineLevel) {
	c.refineLevels = append([]RefineLevel(nil), levels...)
	sort.Slice(c.refineLevels, func(i, j int) bool {
		return c.refineLevels[i].Level < c.refineLevels[j].Level
	})
}

// SetRepairPrices replaces the repair price list.
func (c *Catalog) SetRepairPrices(prices []RepairPrice) {
	c.repairPrices = append([]RepairPrice(nil), prices...)
	sort.Slice(c.repairPrices, func(i, j int) bool {
		return c.repairPrices[i].MaxDurabilityRate < c.repairPrices[j].MaxDurabilityRate
	})
}

// Element returns the element by id, or nil.
func (c *Catalog) Element(id string) *model.DamageElement { return c.elements[id] }

// DefaultElement returns the element used when an attack names none.
func (c *Catalog) DefaultElement() *model.DamageElement { return c.defaultElement }

// Item returns the item definition by id, or nil.
func (c *Catalog) Item(id int32) *ItemDef { return c.items[id] }

// Buff returns the buff definition by id, or nil.
func (c *Catalog) Buff(id int32) *BuffDef { return c.buffs[id] }

// Skill returns the skill definition by id, or nil.
func (c *Catalog) Skill(id int32) *SkillDef { return c.skills[id] }

// Monster returns the monster definition by id, or nil.
func (c *Catalog) Monster(id int32) *MonsterDef { return c.monsters[id] }

// Quest returns the quest definition by id, or nil.
func (c *Catalog) Quest(id int32) *QuestDef { return c.quests[id] }

// Shop returns the shop by id, or nil.
func (c *Catalog) Shop(id int32) *ShopDef { return c.shops[id] }

// Craft returns the crafting recipe by id, or nil.
func (c *Catalog) Craft(id int32) *CraftDef { return c.crafts[id] }

// RefineLevel returns the refine price for a target level.
func (c *Catalog) RefineLevel(level int32) (RefineLevel, bool) {
	for _, l := range c.refineLevels {
		if l.Level == level {
			return l, true
		}
	}
	return RefineLevel{}, false
}

// RepairPrice returns the cheapest band covering the item's durability rate.
func (c *Catalog) RepairPrice(durabilityRate float64) (RepairPrice, bool) {
	for _, p := range c.repairPrices {
		if durabilityRate <= p.MaxDurabilityRate {
			return p, true
		}
	}
	return RepairPrice{}, false
}

// MaxDurability returns the max durability of an item instance, 0 when its
// definition is unknown.
func (c *Catalog) MaxDurability(item *model.CharacterItem) float64 {
	if item.IsEmpty() {
		return 0
	}
	d := c.items[item.DataID]
	if d == nil {
		return 0
	}
	return d.MaxDurability
}

// Counts returns entry counts per section, for startup logs.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"elements": len(c.elements),
		"items":    len(c.items),
		"buffs":    len(c.buffs),
		"skills":   len(c.skills),
		"monsters": len(c.monsters),
		"quests":   len(c.quests),
		"shops":    len(c.shops),
		"crafts":   len(c.crafts),
		"levels":   len(c.Exp),
	}
}
