package model

import (
	"math"
	"testing"
)

var testVitals = Vitals{HP: 100, MP: 50, Stamina: 20, Food: 10, Water: 10}

func TestNewCharacter(t *testing.T) {
	p := NewPlayer(1, "Hero", 3, testVitals)
	if !p.IsPlayer() {
		t.Fatal("NewPlayer() did not create a player")
	}
	if p.Player.Currencies == nil {
		t.Error("player currencies map is nil")
	}
	for r := range resourceCount {
		if p.Current(r) != p.Max(r) {
			t.Errorf("%s = %d, want full pool %d", r, p.Current(r), p.Max(r))
		}
	}

	m := NewMonster(2, "Wolf", 1, SummonPetItem, Vitals{HP: -5})
	if m.IsPlayer() {
		t.Error("monster reported as player")
	}
	if m.SummonType != SummonPetItem {
		t.Errorf("SummonType = %d, want %d", m.SummonType, SummonPetItem)
	}
	if m.MaxHP() != 0 {
		t.Errorf("negative max HP not floored: %d", m.MaxHP())
	}
	if !m.IsDead() {
		t.Error("monster with zero HP should be dead")
	}
}

func TestCharacter_SetCurrent(t *testing.T) {
	tests := []struct {
		name string
		set  int32
		want int32
	}{
		{"within range", 40, 40},
		{"negative", -10, 0},
		{"over max", 500, 100},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPlayer(1, "Hero", 1, testVitals)
			c.SetCurrentHP(tt.set)
			if got := c.CurrentHP(); got != tt.want {
				t.Errorf("CurrentHP() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCharacter_AddCurrent(t *testing.T) {
	tests := []struct {
		name  string
		start int32
		delta int32
		want  int32
	}{
		{"heal", 10, 5, 15},
		{"damage", 10, -5, 5},
		{"overheal", 90, 50, 100},
		{"overkill", 10, -50, 0},
		{"max delta", 10, math.MaxInt32, 100},
		{"min delta", 10, math.MinInt32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPlayer(1, "Hero", 1, testVitals)
			c.SetCurrentHP(tt.start)
			c.AddCurrent(ResourceHP, tt.delta)
			if got := c.CurrentHP(); got != tt.want {
				t.Errorf("CurrentHP() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCharacter_SetMaxTrims(t *testing.T) {
	c := NewPlayer(1, "Hero", 1, testVitals)
	c.SetMax(ResourceMP, 30)
	if c.CurrentMP() != 30 {
		t.Errorf("CurrentMP() = %d, want 30", c.CurrentMP())
	}

	c.SetMax(ResourceMP, 80)
	if c.CurrentMP() != 30 {
		t.Errorf("raising max changed current: %d", c.CurrentMP())
	}
	c.Refill(ResourceMP)
	if c.CurrentMP() != 80 {
		t.Errorf("Refill() left MP at %d, want 80", c.CurrentMP())
	}
}

func TestCharacterItem_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		item *CharacterItem
		want bool
	}{
		{"nil", nil, true},
		{"no data id", &CharacterItem{Amount: 1}, true},
		{"zero amount", &CharacterItem{DataID: 1}, true},
		{"occupied", &CharacterItem{DataID: 1, Amount: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.item.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCharacterItem_DecreaseDurability(t *testing.T) {
	item := &CharacterItem{DataID: 1, Amount: 1, Durability: 1}

	if raw := item.DecreaseDurability(0.5); raw != 0.5 || item.Durability != 0.5 {
		t.Errorf("DecreaseDurability(0.5) = %v, durability %v", raw, item.Durability)
	}
	if raw := item.DecreaseDurability(2); raw != -1.5 {
		t.Errorf("DecreaseDurability(2) = %v, want -1.5", raw)
	}
	if item.Durability != 0 {
		t.Errorf("durability not floored: %v", item.Durability)
	}
}

func TestMovementState(t *testing.T) {
	s := MovementForward | MovementGrounded
	if !s.Has(MovementGrounded) || !s.IsMoving() {
		t.Errorf("state %b: Has(grounded)=%v IsMoving=%v", s, s.Has(MovementGrounded), s.IsMoving())
	}
	if MovementGrounded.IsMoving() {
		t.Error("grounded only should not be moving")
	}
	if s.Has(MovementForward | MovementLeft) {
		t.Error("Has() must require every bit")
	}
}
