package model

// CharacterItem is an item instance owned by a character: equipped in a hand
// slot, in an armor slot, or carried in the inventory.
// Static data (kind, max durability, destroy-if-broken, weight) lives in the
// catalog definition referenced by DataID.
type CharacterItem struct {
	DataID     int32   `yaml:"data_id"`
	Level      int32   `yaml:"level"`
	Amount     int32   `yaml:"amount"`
	Durability float64 `yaml:"durability"`
	// Sockets holds socket enhancer item ids in socket order.
	Sockets []int32 `yaml:"sockets"`
}

// IsEmpty reports whether the slot holding this item is unoccupied.
// A nil item is the empty slot marker.
func (i *CharacterItem) IsEmpty() bool {
	return i == nil || i.DataID == 0 || i.Amount <= 0
}

// DecreaseDurability subtracts amount and floors the result at zero.
// Returns the durability before flooring, which callers use to decide
// whether the item broke.
func (i *CharacterItem) DecreaseDurability(amount float64) float64 {
	raw := i.Durability - amount
	i.Durability = max(raw, 0)
	return raw
}

// EquipWeapons holds the two hand slots. Either may hold a weapon or a shield.
type EquipWeapons struct {
	RightHand *CharacterItem `yaml:"right_hand"`
	LeftHand  *CharacterItem `yaml:"left_hand"`
}
