package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gamerule/internal/game/combat"
	"github.com/udisondev/gamerule/internal/model"
)

// Scenario describes one duel.
type Scenario struct {
	Seed             uint64    `yaml:"seed"`
	MaxRounds        int       `yaml:"max_rounds"`
	RewardMultiplier float64   `yaml:"reward_multiplier"`
	Attacker         Combatant `yaml:"attacker"`
	Defender         Combatant `yaml:"defender"`
}

// Combatant is one side of a duel.
type Combatant struct {
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Level     int32  `yaml:"level"`
	MonsterID int32  `yaml:"monster_id"`
	GuildID   int32  `yaml:"guild_id"`
	Gold      int64  `yaml:"gold"`

	Vitals      model.Vitals         `yaml:"vitals"`
	Stats       model.Stats          `yaml:"stats"`
	Resistances model.ElementAmounts `yaml:"resistances"`
	Armors      model.ElementAmounts `yaml:"armors"`

	RightHand  *model.CharacterItem   `yaml:"right_hand"`
	LeftHand   *model.CharacterItem   `yaml:"left_hand"`
	EquipItems []*model.CharacterItem `yaml:"equip_items"`
	Buffs      []model.CharacterBuff  `yaml:"buffs"`
	Skills     []model.CharacterSkill `yaml:"skills"`

	Hit []HitDamage `yaml:"hit"`
}

// HitDamage is one element of a combatant's attack.
type HitDamage struct {
	Element string  `yaml:"element"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

// LoadScenario reads a duel scenario from YAML.
func LoadScenario(path string) (Scenario, error) {
	sc := Scenario{MaxRounds: 100, RewardMultiplier: 1}

	raw, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if sc.MaxRounds <= 0 {
		return sc, fmt.Errorf("scenario %s: max_rounds must be positive", path)
	}
	return sc, nil
}

// Character builds the combatant's character.
func (c Combatant) Character(objectID uint32) (*model.Character, error) {
	var ch *model.Character
	switch c.Role {
	case "", "player":
		ch = model.NewPlayer(objectID, c.Name, c.Level, c.Vitals)
		ch.Player.GuildID = c.GuildID
		ch.Player.Gold = c.Gold
	case "monster":
		ch = model.NewMonster(objectID, c.Name, c.Level, model.SummonNone, c.Vitals)
	case "pet":
		ch = model.NewMonster(objectID, c.Name, c.Level, model.SummonPetItem, c.Vitals)
	default:
		return nil, fmt.Errorf("combatant %q: unknown role %q", c.Name, c.Role)
	}

	ch.Stats = c.Stats
	if c.Resistances != nil {
		ch.Resistances = c.Resistances
	}
	if c.Armors != nil {
		ch.Armors = c.Armors
	}
	ch.EquipWeapons = model.EquipWeapons{RightHand: c.RightHand, LeftHand: c.LeftHand}
	ch.EquipItems = c.EquipItems
	ch.Buffs = c.Buffs
	ch.Skills = c.Skills
	return ch, nil
}

// Attack converts the combatant's hit list.
func (c Combatant) Attack() combat.Hit {
	hit := combat.Hit{Damages: make([]combat.ElementDamage, 0, len(c.Hit))}
	for _, h := range c.Hit {
		hit.Damages = append(hit.Damages, combat.ElementDamage{
			ElementID: h.Element,
			Amount:    model.MinMax{Min: h.Min, Max: h.Max},
		})
	}
	return hit
}
