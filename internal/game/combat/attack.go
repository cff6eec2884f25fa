package combat

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// ElementDamage is the raw damage range of one element of an attack.
// An empty ElementID means the default element.
type ElementDamage struct {
	ElementID string
	Amount    model.MinMax
}

// Hit is an already dispatched attack: a weapon swing or a skill.
// Elements are rolled in slice order.
type Hit struct {
	Damages []ElementDamage
}

// Aftermath is what happened after damage was applied.
type Aftermath struct {
	Leech   Leech
	Effects int
	Broken  []BrokenItem
}

// AttackResult is the full outcome of one resolved attack.
type AttackResult struct {
	Outcome    Outcome
	AmountType CombatAmountType
	Damage     int32
	Killed     bool
	Aftermath
}

// Resolve runs one attack end to end: outcome roll, per element damage roll
// and mitigation, critical and block scaling, truncation, HP application and
// the received-damage side effects. attacker may be nil for environmental
// damage.
func Resolve(rules *gamerule.Rules, rng gamerule.Random, applier StatusEffectApplier, attacker, defender *model.Character, hit Hit) AttackResult {
	res := AttackResult{Outcome: ResolveOutcome(rules, rng, attacker, defender)}
	res.AmountType = AmountTypeOf(res.Outcome)

	if res.Outcome.Hit {
		var total float64
		for _, d := range hit.Damages {
			element := rules.Catalog.DefaultElement()
			if d.ElementID != "" {
				if e := rules.Catalog.Element(d.ElementID); e != nil {
					element = e
				} else {
					slog.Warn("unknown damage element, using default",
						"element", d.ElementID)
				}
			}
			raw := RandomAttackDamage(rng, d.Amount)
			total += ReduceByResistance(rules, defender.Resistances, defender.Armors, raw, element)
		}
		if attacker != nil {
			if res.Outcome.Critical {
				total = CriticalDamage(attacker, defender, total)
			}
			if res.Outcome.Blocked {
				total = BlockedDamage(attacker, defender, total)
			}
		}
		res.Damage = max(TotalDamage(total), 0)
	}

	alive := !defender.IsDead()
	defender.AddCurrent(model.ResourceHP, -res.Damage)
	res.Killed = alive && defender.IsDead()

	res.Aftermath = OnCharacterReceivedDamage(rules, applier, attacker, defender, res.AmountType, res.Damage)

	attackerName := ""
	if attacker != nil {
		attackerName = attacker.Name
	}
	slog.Debug("attack resolved",
		"attacker", attackerName,
		"defender", defender.Name,
		"type", res.AmountType,
		"damage", res.Damage,
		"killed", res.Killed)
	return res
}

// OnCharacterReceivedDamage applies the consequences of a damage
// application to a character: attacker weapon wear, leech, status effects,
// then defender shield and armor wear. Without an attacker only the
// defender's equipment wears.
func OnCharacterReceivedDamage(rules *gamerule.Rules, applier StatusEffectApplier, attacker, defender *model.Character, amountType CombatAmountType, damage int32) Aftermath {
	var out Aftermath
	dec := DecreaseAmounts(rules.Config.Durability, amountType)

	if attacker != nil {
		out.Broken = append(out.Broken, DecreaseWeaponsDurability(rules, attacker, dec.Weapon)...)
		out.Leech = ApplyLeech(attacker, defender, damage)
		out.Effects = DispatchStatusEffects(rules, applier, attacker, defender)
	}

	out.Broken = append(out.Broken, DecreaseShieldsDurability(rules, defender, dec.Shield)...)
	out.Broken = append(out.Broken, DecreaseArmorsDurability(rules, defender, dec.Armor)...)
	return out
}

// OnHarvestableReceivedDamage wears the attacker's weapons after hitting a
// harvestable (tree, ore vein). Harvestables have no equipment or effects.
func OnHarvestableReceivedDamage(rules *gamerule.Rules, attacker *model.Character, amountType CombatAmountType) []BrokenItem {
	if attacker == nil {
		return nil
	}
	dec := DecreaseAmounts(rules.Config.Durability, amountType)
	return DecreaseWeaponsDurability(rules, attacker, dec.Weapon)
}
