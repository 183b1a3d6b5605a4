package dungeon

import (
	"math/rand"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

// bridgeDrop is the height difference below which a narrow corridor cell
// counts as spanning a chasm.
const bridgeDrop = 5

// ElevationBuilder assigns per-cell heights: smoothed noise over the whole
// canvas, a near-uniform plateau per room, and a lower band for corridor
// cells. Narrow corridor cells overlooking a drop are tagged as bridges.
type ElevationBuilder struct {
	cfg *config.Generation
	rng *rand.Rand
}

// NewElevationBuilder creates a builder drawing from the given random source.
func NewElevationBuilder(cfg *config.Generation, rng *rand.Rand) *ElevationBuilder {
	return &ElevationBuilder{cfg: cfg, rng: rng}
}

// Build constructs the elevation field and writes bridge tags into the
// feature field. Floor cells end up with heights in [1, MaxHeight+1]; wall
// cells stay at 0.
func (b *ElevationBuilder) Build(c *grid.Canvas, rooms []Room, corridors [][]grid.Point, features *grid.FeatureField) *grid.ElevationField {
	elev := grid.NewElevationField(c.Width, c.Height)

	noise := b.smoothedNoise(c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.IsFloor(x, y) {
				elev.Set(x, y, int(noise[y][x]*float64(b.cfg.MaxHeight)))
			}
		}
	}

	b.buildPlateaus(c, rooms, elev)
	b.levelCorridors(c, rooms, corridors, elev, features)

	// Floor cells never sit below height 1.
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.IsFloor(x, y) && elev.Get(x, y) < 1 {
				elev.Set(x, y, 1)
			}
		}
	}

	return elev
}

// smoothedNoise generates uniform noise and averages each cell with its
// four wrap-around neighbors for cfg.Smoothness passes.
func (b *ElevationBuilder) smoothedNoise(width, height int) [][]float64 {
	noise := make([][]float64, height)
	for y := range noise {
		noise[y] = make([]float64, width)
		for x := range noise[y] {
			noise[y][x] = b.rng.Float64()
		}
	}

	for pass := 0; pass < b.cfg.Smoothness; pass++ {
		next := make([][]float64, height)
		for y := 0; y < height; y++ {
			next[y] = make([]float64, width)
			up := (y - 1 + height) % height
			down := (y + 1) % height
			for x := 0; x < width; x++ {
				left := (x - 1 + width) % width
				right := (x + 1) % width
				next[y][x] = (noise[y][x] + noise[up][x] + noise[down][x] + noise[y][left] + noise[y][right]) / 5
			}
		}
		noise = next
	}
	return noise
}

// buildPlateaus gives each room a random base height with edge cells
// jittered by one and interior cells held within one of the base.
func (b *ElevationBuilder) buildPlateaus(c *grid.Canvas, rooms []Room, elev *grid.ElevationField) {
	bases := make([]int, len(rooms))
	for i := range bases {
		bases[i] = b.rng.Intn(b.cfg.MaxHeight) + 1
	}

	for i, r := range rooms {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if !c.IsFloor(x, y) {
					continue
				}
				isEdge := x == r.X || x == r.X+r.W-1 || y == r.Y || y == r.Y+r.H-1
				var jitter int
				if isEdge {
					jitter = b.rng.Intn(3) - 1 // -1..1
				} else {
					jitter = b.rng.Intn(2) - 1 // -1..0
				}
				elev.Set(x, y, max(1, bases[i]+jitter))
			}
		}
	}
}

// levelCorridors pulls corridor cells outside room interiors down into the
// corridor height band and tags bridge cells.
func (b *ElevationBuilder) levelCorridors(c *grid.Canvas, rooms []Room, corridors [][]grid.Point, elev *grid.ElevationField, features *grid.FeatureField) {
	corridorCells := corridorSet(corridors)
	lo, hi := b.cfg.CorridorHeightMin, b.cfg.CorridorHeightMax

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if !c.IsFloor(x, y) || !corridorCells[grid.Point{X: x, Y: y}] {
				continue
			}
			if insideAnyRoomInterior(rooms, x, y) {
				continue
			}

			h := elev.Get(x, y)
			switch {
			case h == 0:
				h = b.rng.Intn(hi-lo+1) + lo
			case h < lo:
				h = lo
			case h > hi:
				h = hi
			}
			elev.Set(x, y, h)

			if b.isBridge(c, elev, x, y) {
				features.Tag(x, y, grid.FeatureBridge)
			}
		}
	}
}

// isBridge reports whether (x, y) is a narrow corridor cell, exactly two
// floor neighbors on a single axis, whose downhill side is open space or a
// floor cell more than bridgeDrop units lower.
func (b *ElevationBuilder) isBridge(c *grid.Canvas, elev *grid.ElevationField, x, y int) bool {
	horizontal := 0
	if x > 0 && x < c.Width-1 {
		if c.IsFloor(x-1, y) {
			horizontal++
		}
		if c.IsFloor(x+1, y) {
			horizontal++
		}
	}
	vertical := 0
	if y > 0 && y < c.Height-1 {
		if c.IsFloor(x, y-1) {
			vertical++
		}
		if c.IsFloor(x, y+1) {
			vertical++
		}
	}
	if horizontal+vertical != 2 || horizontal == 1 {
		return false
	}

	if y+1 >= c.Height {
		return false
	}
	if !c.IsFloor(x, y+1) {
		return true
	}
	return elev.Get(x, y)-elev.Get(x, y+1) > bridgeDrop
}

// corridorSet flattens the per-corridor cell lists into one lookup set.
func corridorSet(corridors [][]grid.Point) map[grid.Point]bool {
	cells := make(map[grid.Point]bool)
	for _, corridor := range corridors {
		for _, p := range corridor {
			cells[p] = true
		}
	}
	return cells
}

func insideAnyRoomInterior(rooms []Room, x, y int) bool {
	for _, r := range rooms {
		if r.InteriorContains(x, y) {
			return true
		}
	}
	return false
}
