package data

// ExperienceTable holds the experience needed to advance from each level.
// Index 0 is the amount needed to go from level 1 to level 2.
type ExperienceTable []int64

// NextLevelExp returns the experience needed to advance from level.
// Zero means the level has no further threshold (max level).
func (t ExperienceTable) NextLevelExp(level int32) int64 {
	if level < 1 || int(level) > len(t) {
		return 0
	}
	return t[level-1]
}

// MaxLevel returns the highest reachable level.
func (t ExperienceTable) MaxLevel() int32 {
	for i, v := range t {
		if v <= 0 {
			return int32(i + 1)
		}
	}
	return int32(len(t) + 1)
}
