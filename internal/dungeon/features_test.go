package dungeon

import (
	"math/rand"
	"testing"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

func TestAnnotateObstaclesRaiseCorridors(t *testing.T) {
	cfg := config.Default()
	cfg.ObstacleProb = 1.0
	cfg.TrapProbEdge = 0
	cfg.TrapProbCorridorCenter = 0
	cfg.SecretHintProb = 0
	cfg.TreasureProb = 0

	// A 3-wide corridor block so the center column is fully surrounded by
	// corridor cells.
	c := grid.NewCanvas(12, 7)
	var corridor []grid.Point
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 9; x++ {
			c.Carve(x, y)
			corridor = append(corridor, grid.Point{X: x, Y: y})
		}
	}
	elev := grid.NewElevationField(12, 7)
	for _, p := range corridor {
		elev.Set(p.X, p.Y, 2)
	}
	features := grid.NewFeatureField(12, 7)

	NewFeatureAnnotator(cfg, rand.New(rand.NewSource(6))).
		Annotate(c, nil, [][]grid.Point{corridor}, elev, features)

	found := 0
	for x := 3; x <= 8; x++ {
		if features.Get(x, 3) != grid.FeatureObstacle {
			continue
		}
		found++
		h := elev.Get(x, 3)
		lo := 2 + cfg.ObstacleHeightMin
		hi := 2 + cfg.ObstacleHeightMax
		if h < lo || h > hi {
			t.Errorf("obstacle at (%d, 3) has height %d, want within [%d, %d]", x, h, lo, hi)
		}
	}
	// With probability 1 every interior center cell becomes an obstacle.
	if found != 6 {
		t.Errorf("obstacles = %d, want 6", found)
	}

	// Edge rows touch non-corridor walls and never qualify.
	for x := 2; x <= 9; x++ {
		if features.Get(x, 2) == grid.FeatureObstacle || features.Get(x, 4) == grid.FeatureObstacle {
			t.Errorf("obstacle on corridor edge at x=%d", x)
		}
	}
}

func TestAnnotateTreasureStaysInterior(t *testing.T) {
	cfg := config.Default()
	cfg.TreasureProb = 1.0
	cfg.TrapProbEdge = 0
	cfg.TrapProbCorridorCenter = 0
	cfg.SecretHintProb = 0
	cfg.ObstacleProb = 0

	rooms := []Room{{ID: 0, X: 2, Y: 2, W: 5, H: 4}}
	c := carveRooms(10, 8, rooms)
	elev := grid.NewElevationField(10, 8)
	features := grid.NewFeatureField(10, 8)

	NewFeatureAnnotator(cfg, rand.New(rand.NewSource(3))).
		Annotate(c, rooms, nil, elev, features)

	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			got := features.Get(x, y)
			if rooms[0].InteriorContains(x, y) {
				if got != grid.FeatureTreasure {
					t.Errorf("interior cell (%d, %d) tag = %v, want treasure", x, y, got)
				}
			} else if got == grid.FeatureTreasure {
				t.Errorf("treasure outside the room interior at (%d, %d)", x, y)
			}
		}
	}
}

func TestAnnotateSecretHintsAtDeadEnds(t *testing.T) {
	cfg := config.Default()
	cfg.SecretHintProb = 1.0
	cfg.TrapProbEdge = 0
	cfg.TrapProbCorridorCenter = 0
	cfg.TreasureProb = 0
	cfg.ObstacleProb = 0

	// A 1-wide strip: both ends are dead ends, everything between is a
	// corridor center.
	c := grid.NewCanvas(8, 3)
	for x := 1; x <= 6; x++ {
		c.Carve(x, 1)
	}
	elev := grid.NewElevationField(8, 3)
	features := grid.NewFeatureField(8, 3)

	NewFeatureAnnotator(cfg, rand.New(rand.NewSource(2))).
		Annotate(c, nil, nil, elev, features)

	if got := features.Get(1, 1); got != grid.FeatureSecretHint {
		t.Errorf("dead end (1, 1) tag = %v, want secret hint", got)
	}
	if got := features.Get(6, 1); got != grid.FeatureSecretHint {
		t.Errorf("dead end (6, 1) tag = %v, want secret hint", got)
	}
	for x := 2; x <= 5; x++ {
		if got := features.Get(x, 1); got != grid.FeatureNone {
			t.Errorf("strip cell (%d, 1) tag = %v, want none", x, got)
		}
	}
}

func TestAnnotateTrapProbabilitySplit(t *testing.T) {
	cfg := config.Default()
	cfg.TrapProbEdge = 1.0
	cfg.TrapProbCorridorCenter = 0
	cfg.SecretHintProb = 0
	cfg.TreasureProb = 0
	cfg.ObstacleProb = 0

	// A straight 1-wide corridor: every cell touches a wall cardinally, so
	// the edge probability applies even with exactly two floor neighbors.
	c := grid.NewCanvas(8, 3)
	for x := 1; x <= 6; x++ {
		c.Carve(x, 1)
	}
	elev := grid.NewElevationField(8, 3)
	features := grid.NewFeatureField(8, 3)

	NewFeatureAnnotator(cfg, rand.New(rand.NewSource(5))).
		Annotate(c, nil, nil, elev, features)

	for x := 2; x <= 5; x++ {
		if got := features.Get(x, 1); got != grid.FeatureTrap {
			t.Errorf("corridor cell (%d, 1) tag = %v, want trap at edge probability 1", x, got)
		}
	}
}

func TestAnnotateNeverOverwritesExistingTags(t *testing.T) {
	cfg := config.Default()
	cfg.TrapProbEdge = 1.0
	cfg.TrapProbCorridorCenter = 1.0
	cfg.SecretHintProb = 1.0
	cfg.TreasureProb = 1.0
	cfg.ObstacleProb = 1.0

	rooms := []Room{{ID: 0, X: 1, Y: 1, W: 5, H: 5}}
	c := carveRooms(8, 8, rooms)
	elev := grid.NewElevationField(8, 8)
	features := grid.NewFeatureField(8, 8)
	features.Set(2, 2, grid.FeatureEntrance)
	features.Set(3, 3, grid.FeaturePath)

	NewFeatureAnnotator(cfg, rand.New(rand.NewSource(1))).
		Annotate(c, rooms, nil, elev, features)

	if got := features.Get(2, 2); got != grid.FeatureEntrance {
		t.Errorf("entrance tag overwritten with %v", got)
	}
	if got := features.Get(3, 3); got != grid.FeaturePath {
		t.Errorf("path tag overwritten with %v", got)
	}
}
