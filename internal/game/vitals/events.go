package vitals

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/mathutil"
	"github.com/udisondev/gamerule/internal/model"
)

// Respawn refills every pool.
func Respawn(c *model.Character) {
	c.Refill(model.ResourceHP)
	c.Refill(model.ResourceMP)
	c.Refill(model.ResourceStamina)
	c.Refill(model.ResourceFood)
	c.Refill(model.ResourceWater)
}

// FallDamage returns the damage of a fall of the given height:
// ceil(maxHP x (distance - min) / (max - min)). Falls shorter than the
// minimum distance are free.
func FallDamage(rules *gamerule.Rules, c *model.Character, distance float64) int32 {
	fd := rules.Config.FallDamage
	if distance < fd.MinDistance {
		return 0
	}
	if fd.MaxDistance <= fd.MinDistance {
		return c.MaxHP()
	}
	return mathutil.CeilToInt32(float64(c.MaxHP()) * (distance - fd.MinDistance) / (fd.MaxDistance - fd.MinDistance))
}

// ApplyFallDamage takes the fall damage from HP and reports whether the
// fall killed the character. The character is its own killer.
func ApplyFallDamage(rules *gamerule.Rules, c *model.Character, distance float64) (damage int32, killed bool) {
	if c.IsDead() {
		return 0, false
	}
	damage = FallDamage(rules, c, distance)
	if damage <= 0 {
		return 0, false
	}
	c.AddCurrent(model.ResourceHP, -damage)
	killed = c.IsDead()
	if killed {
		slog.Info("character died from fall",
			"character", c.Name,
			"distance", distance,
			"damage", damage)
	}
	return damage, killed
}
