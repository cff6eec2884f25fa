package data

import "github.com/udisondev/gamerule/internal/model"

// MinMaxInt is an inclusive integer range.
type MinMaxInt struct {
	Min int32 `yaml:"min"`
	Max int32 `yaml:"max"`
}

// IncrementalMinMaxInt is a range that grows with the monster level.
type IncrementalMinMaxInt struct {
	Base             MinMaxInt `yaml:"base"`
	IncreasePerLevel MinMaxInt `yaml:"increase_per_level"`
}

// At returns the range for a level. Level 1 is the base range.
// Min and max are swapped when a definition lists them backwards.
func (r IncrementalMinMaxInt) At(level int32) MinMaxInt {
	steps := max(level-1, 0)
	out := MinMaxInt{
		Min: r.Base.Min + r.IncreasePerLevel.Min*steps,
		Max: r.Base.Max + r.IncreasePerLevel.Max*steps,
	}
	if out.Min > out.Max {
		out.Min, out.Max = out.Max, out.Min
	}
	return out
}

// MonsterDef is the static definition of a monster's kill reward.
type MonsterDef struct {
	ID   int32                `yaml:"id"`
	Name string               `yaml:"name"`
	Exp  IncrementalMinMaxInt `yaml:"exp"`
	Gold IncrementalMinMaxInt `yaml:"gold"`
}

// QuestDef is the static definition of a quest's completion reward.
type QuestDef struct {
	ID               int32                  `yaml:"id"`
	Name             string                 `yaml:"name"`
	RewardExp        int32                  `yaml:"reward_exp"`
	RewardGold       int32                  `yaml:"reward_gold"`
	RewardCurrencies []model.CurrencyAmount `yaml:"reward_currencies"`
}
