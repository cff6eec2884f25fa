package data

// ItemKind classifies an item definition.
type ItemKind string

const (
	ItemKindWeapon         ItemKind = "weapon"
	ItemKindShield         ItemKind = "shield"
	ItemKindArmor          ItemKind = "armor"
	ItemKindSocketEnhancer ItemKind = "socket_enhancer"
	ItemKindMisc           ItemKind = "misc"
)

// StatusEffectApplying is one status effect a source applies, with its level.
type StatusEffectApplying struct {
	EffectID int32 `yaml:"effect_id"`
	Level    int32 `yaml:"level"`
}

// StatusEffects groups the four trigger lists an equipment item, socket
// enhancer or buff may define.
type StatusEffects struct {
	SelfWhenAttacking  []StatusEffectApplying `yaml:"self_when_attacking"`
	EnemyWhenAttacking []StatusEffectApplying `yaml:"enemy_when_attacking"`
	SelfWhenAttacked   []StatusEffectApplying `yaml:"self_when_attacked"`
	EnemyWhenAttacked  []StatusEffectApplying `yaml:"enemy_when_attacked"`
}

// IsEmpty reports whether no trigger list has entries.
func (s StatusEffects) IsEmpty() bool {
	return len(s.SelfWhenAttacking) == 0 && len(s.EnemyWhenAttacking) == 0 &&
		len(s.SelfWhenAttacked) == 0 && len(s.EnemyWhenAttacked) == 0
}

// ItemDef is the static definition of an item.
type ItemDef struct {
	ID   int32    `yaml:"id"`
	Name string   `yaml:"name"`
	Kind ItemKind `yaml:"kind"`

	MaxDurability   float64 `yaml:"max_durability"`
	DestroyIfBroken bool    `yaml:"destroy_if_broken"`
	Weight          float64 `yaml:"weight"`
	SellPrice       int64   `yaml:"sell_price"`

	// Sockets lists enhancers built into a socket enhancer itself.
	// They are visited after the enhancer, in order.
	Sockets []int32 `yaml:"sockets"`

	StatusEffects StatusEffects `yaml:"status_effects"`
}

// IsWeapon reports whether the item occupies a hand slot as a weapon.
func (d *ItemDef) IsWeapon() bool { return d != nil && d.Kind == ItemKindWeapon }

// IsShield reports whether the item occupies a hand slot as a shield.
func (d *ItemDef) IsShield() bool { return d != nil && d.Kind == ItemKindShield }

// IsArmor reports whether the item occupies an armor slot.
func (d *ItemDef) IsArmor() bool { return d != nil && d.Kind == ItemKindArmor }

// IsSocketEnhancer reports whether the item can be socketed into equipment.
func (d *ItemDef) IsSocketEnhancer() bool { return d != nil && d.Kind == ItemKindSocketEnhancer }

// IsEquipment reports whether the item can be equipped and loses durability.
func (d *ItemDef) IsEquipment() bool {
	return d.IsWeapon() || d.IsShield() || d.IsArmor()
}
