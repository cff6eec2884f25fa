package model

// DamageElement identifies a damage type (physical, fire, ...).
// MaxResistanceAmount caps the resistance a defender may apply against it.
type DamageElement struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	MaxResistanceAmount float64 `yaml:"max_resistance_amount"`
}

// MinMax is an inclusive float range a raw damage amount is rolled from.
type MinMax struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ElementAmounts maps an element id to an amount (resistance fraction or flat armor).
type ElementAmounts map[string]float64
