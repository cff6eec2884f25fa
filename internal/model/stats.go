package model

// Stats is the per-combatant stat snapshot the rule engine reads.
// It is recomputed by the owner whenever equipment, buffs or level change;
// the engine never writes it.
type Stats struct {
	Accuracy float64 `yaml:"accuracy"`
	Evasion  float64 `yaml:"evasion"`

	CriRate      float64 `yaml:"cri_rate"`
	CriDmgRate   float64 `yaml:"cri_dmg_rate"`
	BlockRate    float64 `yaml:"block_rate"`
	BlockDmgRate float64 `yaml:"block_dmg_rate"`

	HPLeechRate      float64 `yaml:"hp_leech_rate"`
	MPLeechRate      float64 `yaml:"mp_leech_rate"`
	StaminaLeechRate float64 `yaml:"stamina_leech_rate"`

	ExpRate  float64 `yaml:"exp_rate"`
	GoldRate float64 `yaml:"gold_rate"`

	WeightLimit float64 `yaml:"weight_limit"`
	SlotLimit   int32   `yaml:"slot_limit"`

	HPRecovery      float64 `yaml:"hp_recovery"`
	MPRecovery      float64 `yaml:"mp_recovery"`
	StaminaRecovery float64 `yaml:"stamina_recovery"`
}
