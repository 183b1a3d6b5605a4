package grid

// Feature is the categorical tag a floor cell can carry. Every concept has
// its own variant; monster tiers are distinct from terrain tags even where
// they share a display glyph (boss and bridge both print as 'B').
type Feature int

const (
	FeatureNone Feature = iota
	FeatureTrap
	FeatureSecretHint
	FeatureObstacle
	FeatureBridge
	FeatureEntrance
	FeatureExit
	FeaturePath
	FeatureTreasure
	FeatureMonsterWeak
	FeatureMonsterNormal
	FeatureMonsterStrong
	FeatureMonsterBoss
)

// AllFeatures returns every feature in declaration order. Exporters iterate
// this instead of map keys so output ordering is stable.
func AllFeatures() []Feature {
	return []Feature{
		FeatureNone,
		FeatureTrap,
		FeatureSecretHint,
		FeatureObstacle,
		FeatureBridge,
		FeatureEntrance,
		FeatureExit,
		FeaturePath,
		FeatureTreasure,
		FeatureMonsterWeak,
		FeatureMonsterNormal,
		FeatureMonsterStrong,
		FeatureMonsterBoss,
	}
}

// String returns the record name of the feature.
func (f Feature) String() string {
	switch f {
	case FeatureNone:
		return "normal"
	case FeatureTrap:
		return "trap"
	case FeatureSecretHint:
		return "secret hint"
	case FeatureObstacle:
		return "obstacle"
	case FeatureBridge:
		return "bridge"
	case FeatureEntrance:
		return "entrance"
	case FeatureExit:
		return "exit"
	case FeaturePath:
		return "path"
	case FeatureTreasure:
		return "treasure"
	case FeatureMonsterWeak:
		return "weak monster"
	case FeatureMonsterNormal:
		return "normal monster"
	case FeatureMonsterStrong:
		return "strong monster"
	case FeatureMonsterBoss:
		return "boss monster"
	}
	return "unknown"
}

// Symbol returns the single map glyph for the feature. The glyph set is a
// compatibility contract with downstream map consumers and must not change.
func (f Feature) Symbol() byte {
	switch f {
	case FeatureTrap:
		return 'T'
	case FeatureSecretHint:
		return '?'
	case FeatureObstacle:
		return 'O'
	case FeatureBridge:
		return 'B'
	case FeatureEntrance:
		return 'E'
	case FeatureExit:
		return 'X'
	case FeaturePath:
		return '+'
	case FeatureTreasure:
		return '$'
	case FeatureMonsterWeak:
		return 'm'
	case FeatureMonsterNormal:
		return 'M'
	case FeatureMonsterStrong:
		return 'S'
	case FeatureMonsterBoss:
		return 'B'
	}
	return '.'
}

// Description returns the prose description used in the structured record.
func (f Feature) Description() string {
	switch f {
	case FeatureTrap:
		return "A dangerous trapped area. Pass through with caution."
	case FeatureSecretHint:
		return "An area likely to hide a secret passage or hidden clue."
	case FeatureObstacle:
		return "A corridor blocked by debris that is difficult to move through."
	case FeatureBridge:
		return "A bridge structure connecting elevated ground."
	case FeatureEntrance:
		return "The dungeon entrance, where the adventure begins."
	case FeatureExit:
		return "The dungeon exit, the goal of the expedition."
	case FeaturePath:
		return "The main route leading from the entrance to the exit."
	case FeatureTreasure:
		return "An area likely to conceal valuable treasure."
	case FeatureMonsterWeak:
		return "A weak monster that even novice adventurers can defeat."
	case FeatureMonsterNormal:
		return "An ordinary monster requiring moderate skill."
	case FeatureMonsterStrong:
		return "A dangerous monster requiring serious strength."
	case FeatureMonsterBoss:
		return "The master of the dungeon, an extremely dangerous boss."
	}
	return "An ordinary corridor or room."
}

// IsMonster reports whether the feature marks a spawned monster.
func (f Feature) IsMonster() bool {
	switch f {
	case FeatureMonsterWeak, FeatureMonsterNormal, FeatureMonsterStrong, FeatureMonsterBoss:
		return true
	}
	return false
}
