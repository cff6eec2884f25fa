package combat

import (
	"log/slog"

	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

//go:generate go tool mockgen -destination=mocks/status_effect_applier_mock.go -package=mocks . StatusEffectApplier

// maxSocketDepth bounds enhancer nesting so a cyclic catalog cannot loop.
const maxSocketDepth = 8

// Trigger tells which side of an attack a status effect source belongs to.
type Trigger int8

const (
	TriggerAttacking Trigger = iota
	TriggerAttacked
)

// SourceKind tells what granted a status effect.
type SourceKind int8

const (
	SourceEquipment SourceKind = iota
	SourceSocketEnhancer
	SourceBuff
	SourcePassiveSkill
)

// StatusEffectApplication is one status effect to apply, in dispatch order.
type StatusEffectApplication struct {
	Trigger     Trigger
	Source      SourceKind
	SourceID    int32
	SourceLevel int32
	Effect      data.StatusEffectApplying

	// Instigator owns the source; Target receives the effect. They are the
	// same character for the self variant.
	Instigator *model.Character
	Target     *model.Character
	Self       bool
}

// StatusEffectApplier receives status effects from the dispatcher. The
// status effect system behind it owns chance rolls, stacking and durations.
type StatusEffectApplier interface {
	ApplyStatusEffect(app StatusEffectApplication)
}

type socketFrame struct {
	def   *data.ItemDef
	level int32
	kind  SourceKind
	depth int
}

type effectDispatch struct {
	catalog *data.Catalog
	applier StatusEffectApplier
	trigger Trigger
	owner   *model.Character
	enemy   *model.Character
	count   int
}

// DispatchStatusEffects triggers the on-attack effects of the attacker and
// then the on-attacked effects of the defender.
//
// Per character the order is: armor slots in slot order, right hand, left
// hand (each host directly followed by its socket enhancers, depth first),
// then active buffs, then passive skills. Every source emits its self
// variant before its enemy variant. Unknown ids are skipped.
func DispatchStatusEffects(rules *gamerule.Rules, applier StatusEffectApplier, attacker, defender *model.Character) int {
	if attacker == nil || defender == nil || applier == nil {
		return 0
	}

	attacking := &effectDispatch{
		catalog: rules.Catalog,
		applier: applier,
		trigger: TriggerAttacking,
		owner:   attacker,
		enemy:   defender,
	}
	attacking.run()

	attacked := &effectDispatch{
		catalog: rules.Catalog,
		applier: applier,
		trigger: TriggerAttacked,
		owner:   defender,
		enemy:   attacker,
	}
	attacked.run()

	total := attacking.count + attacked.count
	slog.Debug("status effects dispatched",
		"attacker", attacker.Name,
		"defender", defender.Name,
		"attacking", attacking.count,
		"attacked", attacked.count)
	return total
}

func (d *effectDispatch) run() {
	for _, item := range d.owner.EquipItems {
		d.visitItem(item)
	}
	d.visitItem(d.owner.EquipWeapons.RightHand)
	d.visitItem(d.owner.EquipWeapons.LeftHand)

	for _, b := range d.owner.Buffs {
		def := d.catalog.Buff(b.BuffID)
		if def == nil {
			continue
		}
		d.emit(SourceBuff, def.ID, b.Level, def.StatusEffects)
	}

	for _, s := range d.owner.Skills {
		def := d.catalog.Skill(s.SkillID)
		if def == nil || !def.Passive {
			continue
		}
		d.emit(SourcePassiveSkill, def.ID, s.Level, def.Buff.StatusEffects)
	}
}

// visitItem walks a host item and its enhancers with an explicit stack.
// Enhancers are pushed in reverse so they pop in socket order. Only
// equipment hosts are visited.
func (d *effectDispatch) visitItem(item *model.CharacterItem) {
	if item.IsEmpty() {
		return
	}
	host := d.catalog.Item(item.DataID)
	if !host.IsEquipment() {
		return
	}

	stack := []socketFrame{{def: host, level: item.Level, kind: SourceEquipment}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d.emit(f.kind, f.def.ID, f.level, f.def.StatusEffects)

		sockets := f.def.Sockets
		if f.kind == SourceEquipment {
			sockets = item.Sockets
		}
		if len(sockets) == 0 {
			continue
		}
		if f.depth >= maxSocketDepth {
			slog.Warn("socket nesting too deep, skipping enhancers",
				"character", d.owner.Name,
				"item", f.def.ID,
				"depth", f.depth)
			continue
		}
		for i := len(sockets) - 1; i >= 0; i-- {
			enhancer := d.catalog.Item(sockets[i])
			if !enhancer.IsSocketEnhancer() {
				continue
			}
			stack = append(stack, socketFrame{
				def:   enhancer,
				level: 1,
				kind:  SourceSocketEnhancer,
				depth: f.depth + 1,
			})
		}
	}
}

func (d *effectDispatch) emit(kind SourceKind, id, level int32, effects data.StatusEffects) {
	self, enemy := effects.SelfWhenAttacking, effects.EnemyWhenAttacking
	if d.trigger == TriggerAttacked {
		self, enemy = effects.SelfWhenAttacked, effects.EnemyWhenAttacked
	}
	for _, e := range self {
		d.apply(kind, id, level, e, d.owner, true)
	}
	for _, e := range enemy {
		d.apply(kind, id, level, e, d.enemy, false)
	}
}

func (d *effectDispatch) apply(kind SourceKind, id, level int32, e data.StatusEffectApplying, target *model.Character, self bool) {
	d.applier.ApplyStatusEffect(StatusEffectApplication{
		Trigger:     d.trigger,
		Source:      kind,
		SourceID:    id,
		SourceLevel: level,
		Effect:      e,
		Instigator:  d.owner,
		Target:      target,
		Self:        self,
	})
	d.count++
}
