package config

// Gameplay holds the tunables of the rule engine.
// Probability clamp bounds are not here on purpose: they are fixed at 5%/95%.
type Gameplay struct {
	Rates Rates `yaml:"rates"`

	// AlwaysHitWhenCritical forces a hit whenever the critical roll succeeds.
	AlwaysHitWhenCritical bool `yaml:"always_hit_when_critical"`

	Durability DurabilityTable `yaml:"durability"`
	Recovery   Recovery        `yaml:"recovery"`
	Hunger     Hunger          `yaml:"hunger"`
	LevelUp    LevelUp         `yaml:"level_up"`
	FallDamage FallDamage      `yaml:"fall_damage"`
	MoveSpeed  MoveSpeed       `yaml:"move_speed"`
	Prices     Prices          `yaml:"prices"`

	ExpLostPercentageWhenDeath float64 `yaml:"exp_lost_percentage_when_death"`
	BaseSlotLimit              int32   `yaml:"base_slot_limit"`
}

// Rates holds server-wide reward multipliers.
type Rates struct {
	Exp  float64 `yaml:"exp"`
	Gold float64 `yaml:"gold"`
}

// DurabilityDecrease is the durability lost per slot kind for one outcome category.
type DurabilityDecrease struct {
	Weapon float64 `yaml:"weapon"`
	Shield float64 `yaml:"shield"`
	Armor  float64 `yaml:"armor"`
}

// DurabilityTable holds the nine decrease rates (slot kind x outcome category).
type DurabilityTable struct {
	Normal   DurabilityDecrease `yaml:"normal"`
	Blocked  DurabilityDecrease `yaml:"blocked"`
	Critical DurabilityDecrease `yaml:"critical"`
	Miss     DurabilityDecrease `yaml:"miss"`
}

// Recovery holds regeneration and decay per second.
type Recovery struct {
	HPRatePerSecond          float64 `yaml:"hp_rate_per_second"`
	MPRatePerSecond          float64 `yaml:"mp_rate_per_second"`
	StaminaPerSecond         float64 `yaml:"stamina_per_second"`
	StaminaDecreasePerSecond float64 `yaml:"stamina_decrease_per_second"`
	FoodDecreasePerSecond    float64 `yaml:"food_decrease_per_second"`
	WaterDecreasePerSecond   float64 `yaml:"water_decrease_per_second"`
}

// Hunger holds thresholds and the HP/MP decay they cause.
type Hunger struct {
	HungryWhenFoodLowerThan   int32   `yaml:"hungry_when_food_lower_than"`
	ThirstyWhenWaterLowerThan int32   `yaml:"thirsty_when_water_lower_than"`
	HPDecreaseRateWhenHungry  float64 `yaml:"hp_decrease_rate_when_hungry"`
	HPDecreaseRateWhenThirsty float64 `yaml:"hp_decrease_rate_when_thirsty"`
	MPDecreaseRateWhenHungry  float64 `yaml:"mp_decrease_rate_when_hungry"`
	MPDecreaseRateWhenThirsty float64 `yaml:"mp_decrease_rate_when_thirsty"`
}

// LevelUp holds point accrual and the refills granted on a level-up.
// A zero "until level" cap means points accrue forever.
type LevelUp struct {
	StatPointsPerLevel    int32 `yaml:"stat_points_per_level"`
	SkillPointsPerLevel   int32 `yaml:"skill_points_per_level"`
	StatPointsUntilLevel  int32 `yaml:"stat_points_until_level"`
	SkillPointsUntilLevel int32 `yaml:"skill_points_until_level"`
	RecoverHP             bool  `yaml:"recover_hp"`
	RecoverMP             bool  `yaml:"recover_mp"`
	RecoverFood           bool  `yaml:"recover_food"`
	RecoverWater          bool  `yaml:"recover_water"`
	RecoverStamina        bool  `yaml:"recover_stamina"`
}

// FallDamage holds the drop distances between which fall damage scales
// from nothing to the full HP pool.
type FallDamage struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// MoveSpeed holds movement speed multipliers per stance.
type MoveSpeed struct {
	Sprinting float64 `yaml:"sprinting"`
	Walking   float64 `yaml:"walking"`
	Crouching float64 `yaml:"crouching"`
	Crawling  float64 `yaml:"crawling"`
	Swimming  float64 `yaml:"swimming"`
}

// Prices holds the fixed gold prices that are not part of a catalog entry.
type Prices struct {
	EnhancerRemovalGold int64 `yaml:"enhancer_removal_gold"`
	CreateGuildGold     int64 `yaml:"create_guild_gold"`
}

// DefaultGameplay returns Gameplay with x1 rates and stock tunables.
func DefaultGameplay() Gameplay {
	return Gameplay{
		Rates: Rates{
			Exp:  1.0,
			Gold: 1.0,
		},
		AlwaysHitWhenCritical: true,
		Durability: DurabilityTable{
			Normal:   DurabilityDecrease{Weapon: 0.5, Shield: 0.5, Armor: 0.1},
			Blocked:  DurabilityDecrease{Weapon: 0.5, Shield: 0.5, Armor: 0.1},
			Critical: DurabilityDecrease{Weapon: 0.5, Shield: 0.5, Armor: 0.1},
			Miss:     DurabilityDecrease{},
		},
		Recovery: Recovery{
			HPRatePerSecond:          0.05,
			MPRatePerSecond:          0.05,
			StaminaPerSecond:         5,
			StaminaDecreasePerSecond: 5,
			FoodDecreasePerSecond:    0.02,
			WaterDecreasePerSecond:   0.02,
		},
		Hunger: Hunger{
			HungryWhenFoodLowerThan:   40,
			ThirstyWhenWaterLowerThan: 40,
			HPDecreaseRateWhenHungry:  0.01,
			HPDecreaseRateWhenThirsty: 0.01,
			MPDecreaseRateWhenHungry:  0.01,
			MPDecreaseRateWhenThirsty: 0.01,
		},
		LevelUp: LevelUp{
			StatPointsPerLevel:  5,
			SkillPointsPerLevel: 1,
			RecoverHP:           true,
			RecoverMP:           true,
			RecoverStamina:      true,
		},
		FallDamage: FallDamage{
			MinDistance: 5,
			MaxDistance: 20,
		},
		MoveSpeed: MoveSpeed{
			Sprinting: 1.5,
			Walking:   0.5,
			Crouching: 0.35,
			Crawling:  0.15,
			Swimming:  0.5,
		},
		Prices: Prices{
			EnhancerRemovalGold: 100,
			CreateGuildGold:     1000,
		},
		ExpLostPercentageWhenDeath: 2,
		BaseSlotLimit:              30,
	}
}
