package data

// BuffDef is the static definition of a buff.
type BuffDef struct {
	ID            int32         `yaml:"id"`
	Name          string        `yaml:"name"`
	StatusEffects StatusEffects `yaml:"status_effects"`
}

// SkillDef is the static definition of a skill.
// Only passive skills take part in on-hit effect dispatch, through their buff.
type SkillDef struct {
	ID      int32   `yaml:"id"`
	Name    string  `yaml:"name"`
	Passive bool    `yaml:"passive"`
	Buff    BuffDef `yaml:"buff"`
}
