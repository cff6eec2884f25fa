package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/gamerule/internal/game/combat"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

func TestApplyLeech(t *testing.T) {
	attacker := testutil.NewPlayer("attacker")
	attacker.Stats = model.Stats{HPLeechRate: 0.1, MPLeechRate: 0.1, StaminaLeechRate: 0.02}
	attacker.SetCurrentHP(500)
	attacker.SetCurrent(model.ResourceMP, 0)
	attacker.SetCurrent(model.ResourceStamina, 99)
	defender := testutil.NewMonster("defender")

	got := combat.ApplyLeech(attacker, defender, 53)

	assert.Equal(t, combat.Leech{HP: 6, MP: 6, Stamina: 2}, got)
	assert.Equal(t, int32(506), attacker.CurrentHP())
	assert.Equal(t, int32(1000), defender.CurrentHP(), "hp leech does not drain the defender")
	assert.Equal(t, int32(6), attacker.CurrentMP())
	assert.Equal(t, int32(194), defender.CurrentMP())
	assert.Equal(t, int32(100), attacker.CurrentStamina(), "clamped to max")
	assert.Equal(t, int32(98), defender.CurrentStamina())
}

func TestApplyLeech_NoRates(t *testing.T) {
	attacker := testutil.NewPlayer("attacker")
	defender := testutil.NewMonster("defender")

	assert.Zero(t, combat.ApplyLeech(attacker, defender, 100))
}
