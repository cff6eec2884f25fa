package vitals

import (
	"math"
	"time"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// Regen accumulates fractional per-second changes of one character and
// applies them as whole points. The zero value is ready to use.
// Not safe for concurrent use; the owner ticks it from its update loop.
type Regen struct {
	acc [5]float64
}

// TickResult is what one Tick applied.
type TickResult struct {
	HP, MP, Stamina, Food, Water int32

	// Starved is set when hunger or thirst drained the last HP.
	Starved bool
}

// Tick advances the accumulators by dt and applies whole points through
// the clamped setters. Dead characters do not change.
func (r *Regen) Tick(rules *gamerule.Rules, c *model.Character, mv model.Movement, dt time.Duration) TickResult {
	var res TickResult
	if c.IsDead() || dt <= 0 {
		return res
	}
	sec := dt.Seconds()

	stamina := RecoveryStaminaPerSecond(rules, c)
	if drain := DecreasingStaminaPerSecond(rules, mv); drain > 0 {
		stamina = -drain
	}

	res.HP = r.step(c, model.ResourceHP, (RecoveryHPPerSecond(rules, c)-DecreasingHPPerSecond(rules, c))*sec)
	res.MP = r.step(c, model.ResourceMP, (RecoveryMPPerSecond(rules, c)-DecreasingMPPerSecond(rules, c))*sec)
	res.Stamina = r.step(c, model.ResourceStamina, stamina*sec)
	res.Food = r.step(c, model.ResourceFood, -DecreasingFoodPerSecond(rules, c)*sec)
	res.Water = r.step(c, model.ResourceWater, -DecreasingWaterPerSecond(rules, c)*sec)

	res.Starved = res.HP < 0 && c.IsDead()
	return res
}

// Reset drops the fractional remainders, e.g. after respawn.
func (r *Regen) Reset() {
	r.acc = [5]float64{}
}

func (r *Regen) step(c *model.Character, res model.Resource, delta float64) int32 {
	r.acc[res] += delta
	whole := math.Trunc(r.acc[res])
	if whole == 0 {
		return 0
	}
	r.acc[res] -= whole

	before := c.Current(res)
	c.AddCurrent(res, int32(max(min(whole, math.MaxInt32), math.MinInt32)))
	return c.Current(res) - before
}
