package dungeon

import (
	"math/rand"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

// FeatureAnnotator tags untouched floor cells with traps, secret hints,
// obstacles, and treasure. It runs only after the path validator has
// succeeded, so the main path is already tagged and stays untouched; one
// tag per cell, first successful roll wins.
type FeatureAnnotator struct {
	cfg *config.Generation
	rng *rand.Rand
}

// NewFeatureAnnotator creates an annotator drawing from the given random
// source.
func NewFeatureAnnotator(cfg *config.Generation, rng *rand.Rand) *FeatureAnnotator {
	return &FeatureAnnotator{cfg: cfg, rng: rng}
}

// Annotate runs the three placement passes in order: corridor obstacles,
// room treasure, then the global trap/secret-hint scan.
func (a *FeatureAnnotator) Annotate(c *grid.Canvas, rooms []Room, corridors [][]grid.Point, elev *grid.ElevationField, features *grid.FeatureField) {
	a.placeObstacles(c, rooms, corridors, elev, features)
	a.placeTreasure(c, rooms, features)
	a.placeTrapsAndHints(c, features)
}

// placeObstacles rolls for corridor cells fully surrounded by other
// corridor cells; a hit raises the local elevation by a random bonus and
// tags the cell.
func (a *FeatureAnnotator) placeObstacles(c *grid.Canvas, rooms []Room, corridors [][]grid.Point, elev *grid.ElevationField, features *grid.FeatureField) {
	corridorCells := corridorSet(corridors)
	lo, hi := a.cfg.ObstacleHeightMin, a.cfg.ObstacleHeightMax

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := grid.Point{X: x, Y: y}
			if !c.IsFloor(x, y) || !corridorCells[p] || insideAnyRoomInterior(rooms, x, y) {
				continue
			}
			if features.Get(x, y) != grid.FeatureNone {
				continue
			}
			surrounded := true
			for _, off := range grid.CardinalOffsets {
				np := grid.Point{X: x + off.X, Y: y + off.Y}
				if !c.IsFloor(np.X, np.Y) || !corridorCells[np] {
					surrounded = false
					break
				}
			}
			if !surrounded {
				continue
			}
			if a.rng.Float64() < a.cfg.ObstacleProb {
				elev.Set(x, y, elev.Get(x, y)+a.rng.Intn(hi-lo+1)+lo)
				features.Tag(x, y, grid.FeatureObstacle)
			}
		}
	}
}

// placeTreasure rolls for strictly interior room cells.
func (a *FeatureAnnotator) placeTreasure(c *grid.Canvas, rooms []Room, features *grid.FeatureField) {
	for _, r := range rooms {
		for y := r.Y + 1; y < r.Y+r.H-1; y++ {
			for x := r.X + 1; x < r.X+r.W-1; x++ {
				if !c.IsFloor(x, y) || features.Get(x, y) != grid.FeatureNone {
					continue
				}
				if a.rng.Float64() < a.cfg.TreasureProb {
					features.Tag(x, y, grid.FeatureTreasure)
				}
			}
		}
	}
}

// placeTrapsAndHints scans every untagged floor cell. Dead ends (one floor
// neighbor) may become secret hints. Cells with two or more floor neighbors
// may become traps: corridor midpoints use the lower center probability,
// anything structurally touching a wall the higher edge probability.
func (a *FeatureAnnotator) placeTrapsAndHints(c *grid.Canvas, features *grid.FeatureField) {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if !c.IsFloor(x, y) || features.Get(x, y) != grid.FeatureNone {
				continue
			}

			liveNeighbors := 0
			onEdge := false
			for _, off := range grid.CardinalOffsets {
				if c.IsFloor(x+off.X, y+off.Y) {
					liveNeighbors++
				} else {
					onEdge = true
				}
			}
			if !onEdge {
				for _, off := range grid.DiagonalOffsets {
					if !c.IsFloor(x+off.X, y+off.Y) {
						onEdge = true
						break
					}
				}
			}

			switch {
			case liveNeighbors == 1:
				if a.rng.Float64() < a.cfg.SecretHintProb {
					features.Tag(x, y, grid.FeatureSecretHint)
				}
			case liveNeighbors >= 2:
				prob := a.cfg.TrapProbEdge
				if liveNeighbors == 2 && !onEdge {
					prob = a.cfg.TrapProbCorridorCenter
				}
				if a.rng.Float64() < prob {
					features.Tag(x, y, grid.FeatureTrap)
				}
			}
		}
	}
}
