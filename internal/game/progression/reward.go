package progression

import (
	"slices"

	"github.com/udisondev/gamerule/internal/data"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
)

// MakeMonsterReward rolls the exp and gold a monster of the given level drops.
func MakeMonsterReward(rng gamerule.Random, def *data.MonsterDef, level int32) model.Reward {
	if def == nil {
		return model.Reward{}
	}
	return model.Reward{
		Exp:  roll(rng, def.Exp.At(level)),
		Gold: roll(rng, def.Gold.At(level)),
	}
}

// MakeQuestReward builds the fixed reward of a quest.
func MakeQuestReward(def *data.QuestDef) model.Reward {
	if def == nil {
		return model.Reward{}
	}
	return model.Reward{
		Exp:        def.RewardExp,
		Gold:       def.RewardGold,
		Currencies: slices.Clone(def.RewardCurrencies),
	}
}

func roll(rng gamerule.Random, r data.MinMaxInt) int32 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + int32(rng.IntN(int(r.Max-r.Min)+1))
}
