package model

// Role tags what kind of combatant a Character is.
// Player-only state lives in Character.Player and is nil for monsters.
type Role int8

const (
	RolePlayer Role = iota
	RoleMonster
)

// String returns the role name used in logs.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// SummonType describes how a monster came into the world.
// Only pets summoned from an item collect experience.
type SummonType int8

const (
	SummonNone SummonType = iota
	SummonSkill
	SummonPetItem
)

// Resource identifies one of the clamped resource pools.
type Resource int

const (
	ResourceHP Resource = iota
	ResourceMP
	ResourceStamina
	ResourceFood
	ResourceWater
	resourceCount
)

// String returns the resource name used in logs.
func (r Resource) String() string {
	switch r {
	case ResourceHP:
		return "hp"
	case ResourceMP:
		return "mp"
	case ResourceStamina:
		return "stamina"
	case ResourceFood:
		return "food"
	case ResourceWater:
		return "water"
	default:
		return "unknown"
	}
}

// Vitals holds one value per resource pool.
type Vitals struct {
	HP      int32 `yaml:"hp"`
	MP      int32 `yaml:"mp"`
	Stamina int32 `yaml:"stamina"`
	Food    int32 `yaml:"food"`
	Water   int32 `yaml:"water"`
}

func (v Vitals) get(r Resource) int32 {
	switch r {
	case ResourceHP:
		return v.HP
	case ResourceMP:
		return v.MP
	case ResourceStamina:
		return v.Stamina
	case ResourceFood:
		return v.Food
	case ResourceWater:
		return v.Water
	}
	return 0
}

// CharacterBuff is an active buff with the level it was applied at.
type CharacterBuff struct {
	BuffID int32 `yaml:"buff_id"`
	Level  int32 `yaml:"level"`
}

// CharacterSkill is a learned skill in the character's cached skill list.
type CharacterSkill struct {
	SkillID int32 `yaml:"skill_id"`
	Level   int32 `yaml:"level"`
}

// PlayerData is the state only player characters carry.
type PlayerData struct {
	GuildID    int32
	StatPoint  int32
	SkillPoint int32
	Gold       int64
	Currencies map[string]int64
}

// Currency returns the held amount of a non-gold currency.
func (p *PlayerData) Currency(id string) int64 {
	return p.Currencies[id]
}

type pool struct {
	current int32
	max     int32
}

// Character is a combatant: a player character, a monster or a summon.
// The engine mutates it in place; callers serialize access per entity.
type Character struct {
	ObjectID   uint32
	Name       string
	Role       Role
	SummonType SummonType

	Level int32
	Exp   int64

	Stats       Stats
	Resistances ElementAmounts
	Armors      ElementAmounts

	EquipWeapons  EquipWeapons
	EquipItems    []*CharacterItem
	NonEquipItems []*CharacterItem

	Buffs  []CharacterBuff
	Skills []CharacterSkill

	// Player is nil unless Role is RolePlayer.
	Player *PlayerData

	pools [resourceCount]pool
}

// NewCharacter creates a character with every pool filled to its maximum.
func NewCharacter(objectID uint32, name string, role Role, level int32, maxVitals Vitals) *Character {
	c := &Character{
		ObjectID:    objectID,
		Name:        name,
		Role:        role,
		Level:       level,
		Resistances: ElementAmounts{},
		Armors:      ElementAmounts{},
	}
	for r := range resourceCount {
		m := max(maxVitals.get(r), 0)
		c.pools[r] = pool{current: m, max: m}
	}
	return c
}

// NewPlayer creates a player character with empty player data.
func NewPlayer(objectID uint32, name string, level int32, maxVitals Vitals) *Character {
	c := NewCharacter(objectID, name, RolePlayer, level, maxVitals)
	c.Player = &PlayerData{Currencies: make(map[string]int64)}
	return c
}

// NewMonster creates a monster or summon.
func NewMonster(objectID uint32, name string, level int32, summon SummonType, maxVitals Vitals) *Character {
	c := NewCharacter(objectID, name, RoleMonster, level, maxVitals)
	c.SummonType = summon
	return c
}

// IsPlayer reports whether the character carries player data.
func (c *Character) IsPlayer() bool {
	return c.Role == RolePlayer && c.Player != nil
}

// IsDead reports whether HP is depleted.
func (c *Character) IsDead() bool {
	return c.pools[ResourceHP].current <= 0
}

// Current returns the current value of a pool.
func (c *Character) Current(r Resource) int32 {
	return c.pools[r].current
}

// Max returns the maximum of a pool.
func (c *Character) Max(r Resource) int32 {
	return c.pools[r].max
}

// SetCurrent sets a pool with validation (clamp 0..max).
func (c *Character) SetCurrent(r Resource, v int32) {
	p := &c.pools[r]
	p.current = min(max(v, 0), p.max)
}

// AddCurrent adds delta to a pool, clamping to 0..max without int32 overflow.
func (c *Character) AddCurrent(r Resource, delta int32) {
	v := int64(c.pools[r].current) + int64(delta)
	p := &c.pools[r]
	p.current = int32(min(max(v, 0), int64(p.max)))
}

// SetMax sets a pool maximum and trims the current value if needed.
func (c *Character) SetMax(r Resource, v int32) {
	p := &c.pools[r]
	p.max = max(v, 0)
	if p.current > p.max {
		p.current = p.max
	}
}

// Refill sets a pool to its maximum.
func (c *Character) Refill(r Resource) {
	c.pools[r].current = c.pools[r].max
}

// CurrentHP returns the current HP.
func (c *Character) CurrentHP() int32 { return c.Current(ResourceHP) }

// MaxHP returns the maximum HP.
func (c *Character) MaxHP() int32 { return c.Max(ResourceHP) }

// SetCurrentHP sets HP with validation (clamp 0..maxHP).
func (c *Character) SetCurrentHP(hp int32) { c.SetCurrent(ResourceHP, hp) }

// CurrentMP returns the current MP.
func (c *Character) CurrentMP() int32 { return c.Current(ResourceMP) }

// CurrentStamina returns the current stamina.
func (c *Character) CurrentStamina() int32 { return c.Current(ResourceStamina) }

// CurrentFood returns the current food.
func (c *Character) CurrentFood() int32 { return c.Current(ResourceFood) }

// CurrentWater returns the current water.
func (c *Character) CurrentWater() int32 { return c.Current(ResourceWater) }
