package vitals

import (
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// MoveSpeedRate returns the multiplier on base move speed for a movement
// snapshot. Swimming overrides the stance.
func MoveSpeedRate(rules *gamerule.Rules, mv model.Movement) float64 {
	ms := rules.Config.MoveSpeed
	if mv.Swimming {
		return ms.Swimming
	}
	switch mv.Extra {
	case model.ExtraMovementSprinting:
		return ms.Sprinting
	case model.ExtraMovementWalking:
		return ms.Walking
	case model.ExtraMovementCrouching:
		return ms.Crouching
	case model.ExtraMovementCrawling:
		return ms.Crawling
	default:
		return 1
	}
}
