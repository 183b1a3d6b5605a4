package dungeon

import (
	"math/rand"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

// safeZoneRadius is the Chebyshev radius around the entrance and exit kept
// clear of monsters.
const safeZoneRadius = 3

// treasureGuardRadius is the Chebyshev radius within which a treasure cell
// pulls monster placement toward the strong tiers.
const treasureGuardRadius = 5

// roomPlacementAttempts bounds the per-room cell sampling loop.
const roomPlacementAttempts = 50

// Monster is one spawned creature.
type Monster struct {
	Name     string
	Tier     Tier
	Level    int
	HP       int
	Attack   int
	Position grid.Point
}

// Danger is the monster's combined threat score.
func (m Monster) Danger() int {
	return m.Level + m.HP + m.Attack
}

// MonsterPopulator places tiered monsters into rooms and corridors.
type MonsterPopulator struct {
	cfg   *config.Generation
	rng   *rand.Rand
	tiers TierTable
}

// NewMonsterPopulator creates a populator drawing from the given random
// source.
func NewMonsterPopulator(cfg *config.Generation, rng *rand.Rand, tiers TierTable) *MonsterPopulator {
	return &MonsterPopulator{cfg: cfg, rng: rng, tiers: tiers}
}

// tier weights per room size bucket: weak, normal, strong, boss.
var (
	largeRoomWeights    = [4]float64{0.2, 0.4, 0.3, 0.1}
	mediumRoomWeights   = [4]float64{0.3, 0.5, 0.2, 0}
	smallRoomWeights    = [4]float64{0.6, 0.4, 0, 0}
	corridorTierWeights = [4]float64{0.7, 0.3, 0, 0}
)

// Populate fills each room up to its area-derived quota and then gives
// every remaining floor cell a small independent chance of holding a
// wandering corridor monster. Cells within the safe zone of the entrance or
// exit, and cells already tagged with anything but none/path, are skipped.
func (p *MonsterPopulator) Populate(c *grid.Canvas, rooms []Room, features *grid.FeatureField, entrance, exit grid.Point) []Monster {
	var monsters []Monster

	for _, r := range rooms {
		monsters = append(monsters, p.populateRoom(c, r, features, entrance, exit)...)
	}

	// Wandering corridor monsters.
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if !c.IsFloor(x, y) || features.Get(x, y) != grid.FeatureNone {
				continue
			}
			pos := grid.Point{X: x, Y: y}
			if p.inSafeZone(pos, entrance, exit) {
				continue
			}
			if p.rng.Float64() < p.cfg.CorridorMonsterProb {
				tier := p.weightedTier(corridorTierWeights)
				monsters = append(monsters, p.spawn(tier, pos, features))
			}
		}
	}

	return monsters
}

func (p *MonsterPopulator) populateRoom(c *grid.Canvas, r Room, features *grid.FeatureField, entrance, exit grid.Point) []Monster {
	area := r.Area()
	quota := max(1, int(float64(area)*p.cfg.MonsterDensity/20))
	hasBoss := area > 100 && p.rng.Float64() < p.cfg.BossRoomProb

	var monsters []Monster
	placed := 0
	for attempts := 0; placed < quota && attempts < roomPlacementAttempts; attempts++ {
		pos := p.randomRoomCell(r)
		tag := features.Get(pos.X, pos.Y)
		if (tag != grid.FeatureNone && tag != grid.FeaturePath) || p.inSafeZone(pos, entrance, exit) {
			continue
		}

		var tier Tier
		if hasBoss && placed == 0 {
			tier = TierBoss
			hasBoss = false
		} else {
			tier = p.weightedTier(roomWeights(area))
		}

		// Treasure draws guardians.
		if p.treasureNearby(c, features, pos) && p.rng.Float64() < 0.7 {
			tier = TierStrong + Tier(p.rng.Intn(2))
		}

		monsters = append(monsters, p.spawn(tier, pos, features))
		placed++
	}
	return monsters
}

func (p *MonsterPopulator) spawn(tier Tier, pos grid.Point, features *grid.FeatureField) Monster {
	stats := p.tiers[tier]
	features.Set(pos.X, pos.Y, tier.Feature())
	return Monster{
		Name:     stats.Names[p.rng.Intn(len(stats.Names))],
		Tier:     tier,
		Level:    p.randRange(stats.LevelMin, stats.LevelMax),
		HP:       p.randRange(stats.HPMin, stats.HPMax),
		Attack:   p.randRange(stats.AttackMin, stats.AttackMax),
		Position: pos,
	}
}

func (p *MonsterPopulator) randomRoomCell(r Room) grid.Point {
	x := r.X
	if r.W > 2 {
		x = r.X + 1 + p.rng.Intn(r.W-2)
	}
	y := r.Y
	if r.H > 2 {
		y = r.Y + 1 + p.rng.Intn(r.H-2)
	}
	return grid.Point{X: x, Y: y}
}

func (p *MonsterPopulator) inSafeZone(pos, entrance, exit grid.Point) bool {
	return grid.Chebyshev(pos, entrance) <= safeZoneRadius ||
		grid.Chebyshev(pos, exit) <= safeZoneRadius
}

func (p *MonsterPopulator) treasureNearby(c *grid.Canvas, features *grid.FeatureField, pos grid.Point) bool {
	for dy := -treasureGuardRadius; dy <= treasureGuardRadius; dy++ {
		for dx := -treasureGuardRadius; dx <= treasureGuardRadius; dx++ {
			if features.Get(pos.X+dx, pos.Y+dy) == grid.FeatureTreasure {
				return true
			}
		}
	}
	return false
}

// weightedTier draws a tier from the weight table. Weights are assumed to
// sum to 1; rounding drift falls back to the last non-zero entry.
func (p *MonsterPopulator) weightedTier(weights [4]float64) Tier {
	r := p.rng.Float64()
	cumulative := 0.0
	last := TierWeak
	for t := TierWeak; t < tierCount; t++ {
		w := weights[t]
		if w == 0 {
			continue
		}
		last = t
		cumulative += w
		if r < cumulative {
			return t
		}
	}
	return last
}

func roomWeights(area int) [4]float64 {
	switch {
	case area > 150:
		return largeRoomWeights
	case area > 100:
		return mediumRoomWeights
	default:
		return smallRoomWeights
	}
}

func (p *MonsterPopulator) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}
