package model

// CurrencyAmount is an amount of a non-gold currency.
type CurrencyAmount struct {
	CurrencyID string `yaml:"currency"`
	Amount     int32  `yaml:"amount"`
}

// Reward is what a monster kill or a finished quest grants.
// It is built once and then only read; scaling happens when it is applied.
type Reward struct {
	Exp        int32
	Gold       int32
	Currencies []CurrencyAmount
}

// RewardGivenType tells how a reward was earned. Only kill and party share
// rewards are scaled by rates and raised by the guild bonus; other rewards
// are credited as is.
type RewardGivenType int

const (
	RewardKillMonster RewardGivenType = iota
	RewardPartyShare
	RewardQuest
)

// String returns the reward type name used in logs.
func (t RewardGivenType) String() string {
	switch t {
	case RewardKillMonster:
		return "kill_monster"
	case RewardPartyShare:
		return "party_share"
	case RewardQuest:
		return "quest"
	default:
		return "unknown"
	}
}

// GuildBonus holds guild reward percentages. The zero value means no bonus.
type GuildBonus struct {
	GuildID                 int32
	ExpGainPercentage       float64
	ShareExpGainPercentage  float64
	GoldGainPercentage      float64
	ShareGoldGainPercentage float64
}
