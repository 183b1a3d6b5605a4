package dungeon

import "github.com/stonehall/dungeongen/internal/grid"

// Tier is a monster difficulty class.
type Tier int

const (
	TierWeak Tier = iota
	TierNormal
	TierStrong
	TierBoss
	tierCount
)

// String returns the record name of the tier.
func (t Tier) String() string {
	switch t {
	case TierWeak:
		return "weak monster"
	case TierNormal:
		return "normal monster"
	case TierStrong:
		return "strong monster"
	case TierBoss:
		return "boss monster"
	}
	return "unknown"
}

// Feature returns the feature tag marking this tier on the map.
func (t Tier) Feature() grid.Feature {
	switch t {
	case TierWeak:
		return grid.FeatureMonsterWeak
	case TierNormal:
		return grid.FeatureMonsterNormal
	case TierStrong:
		return grid.FeatureMonsterStrong
	case TierBoss:
		return grid.FeatureMonsterBoss
	}
	return grid.FeatureNone
}

// TierStats holds the stat ranges and name pool of one tier. All ranges are
// inclusive.
type TierStats struct {
	Names     []string
	LevelMin  int
	LevelMax  int
	HPMin     int
	HPMax     int
	AttackMin int
	AttackMax int
}

// TierTable maps each tier to its stats, indexed by Tier.
type TierTable [tierCount]TierStats

// DefaultTierTable returns the standard bestiary.
func DefaultTierTable() TierTable {
	return TierTable{
		TierWeak: {
			Names:    []string{"Goblin", "Bat", "Rat", "Slime", "Skeleton"},
			LevelMin: 1, LevelMax: 3,
			HPMin: 5, HPMax: 15,
			AttackMin: 1, AttackMax: 4,
		},
		TierNormal: {
			Names:    []string{"Orc", "Wolf", "Spider", "Zombie", "Kobold"},
			LevelMin: 3, LevelMax: 6,
			HPMin: 15, HPMax: 35,
			AttackMin: 3, AttackMax: 8,
		},
		TierStrong: {
			Names:    []string{"Ogre", "Troll", "Minotaur", "Gargoyle", "Lich"},
			LevelMin: 6, LevelMax: 10,
			HPMin: 35, HPMax: 70,
			AttackMin: 8, AttackMax: 15,
		},
		TierBoss: {
			Names:    []string{"Dragon", "Demon Lord", "Lich King", "Ancient Golem", "Queen of Night"},
			LevelMin: 10, LevelMax: 15,
			HPMin: 70, HPMax: 150,
			AttackMin: 15, AttackMax: 25,
		},
	}
}
