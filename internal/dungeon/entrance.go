package dungeon

import (
	"math/rand"

	"github.com/stonehall/dungeongen/internal/grid"
)

// EntranceExitSelector places the entrance and exit in the two rooms whose
// centers are farthest apart.
type EntranceExitSelector struct {
	rng *rand.Rand
}

// NewEntranceExitSelector creates a selector drawing from the given random
// source.
func NewEntranceExitSelector(rng *rand.Rand) *EntranceExitSelector {
	return &EntranceExitSelector{rng: rng}
}

// Select picks entrance and exit cells, tags them, and shapes the nearby
// elevation: the exit sits at height 1, the entrance at height >= 1, and
// the exit's eight neighbors are halved to ease the final approach. With a
// single room both endpoints fall into that room, the exit offset one cell
// from the entrance.
func (s *EntranceExitSelector) Select(c *grid.Canvas, rooms []Room, elev *grid.ElevationField, features *grid.FeatureField) (entrance, exit grid.Point, err error) {
	if len(rooms) == 0 {
		return grid.Point{}, grid.Point{}, ErrPlacementFailed
	}

	if len(rooms) == 1 {
		return s.selectSingleRoom(c, rooms[0], elev, features)
	}

	ri, rj := farthestPair(rooms)
	entrance = s.randomInteriorCell(rooms[ri])
	exit = s.randomInteriorCell(rooms[rj])

	s.finalize(c, elev, features, entrance, exit)
	return entrance, exit, nil
}

// selectSingleRoom forces both endpoints into the only room, carving an
// adjacent exit cell when the room is a single cell.
func (s *EntranceExitSelector) selectSingleRoom(c *grid.Canvas, room Room, elev *grid.ElevationField, features *grid.FeatureField) (grid.Point, grid.Point, error) {
	entrance := room.Center()

	exit := grid.Point{X: entrance.X + 1, Y: entrance.Y}
	if !c.InBounds(exit.X, exit.Y) {
		exit = grid.Point{X: entrance.X - 1, Y: entrance.Y}
	}
	if !c.InBounds(exit.X, exit.Y) {
		return grid.Point{}, grid.Point{}, ErrPlacementFailed
	}
	if !c.IsFloor(exit.X, exit.Y) {
		c.Carve(exit.X, exit.Y)
	}

	s.finalize(c, elev, features, entrance, exit)
	return entrance, exit, nil
}

func (s *EntranceExitSelector) finalize(c *grid.Canvas, elev *grid.ElevationField, features *grid.FeatureField, entrance, exit grid.Point) {
	elev.Set(entrance.X, entrance.Y, max(1, elev.Get(entrance.X, entrance.Y)))
	elev.Set(exit.X, exit.Y, 1)
	features.Set(entrance.X, entrance.Y, grid.FeatureEntrance)
	features.Set(exit.X, exit.Y, grid.FeatureExit)

	// Lower the exit's surroundings, leaving the entrance alone when the
	// two happen to be adjacent.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := exit.X+dx, exit.Y+dy
			if !c.IsFloor(nx, ny) || (nx == entrance.X && ny == entrance.Y) {
				continue
			}
			elev.Set(nx, ny, max(1, elev.Get(nx, ny)/2))
		}
	}
}

// randomInteriorCell returns a random non-edge cell of the room, falling
// back to an edge cell when the room is too thin to have an interior.
func (s *EntranceExitSelector) randomInteriorCell(r Room) grid.Point {
	x := r.X
	if r.W > 2 {
		x = r.X + 1 + s.rng.Intn(r.W-2)
	}
	y := r.Y
	if r.H > 2 {
		y = r.Y + 1 + s.rng.Intn(r.H-2)
	}
	return grid.Point{X: x, Y: y}
}

// farthestPair exhaustively scans all room pairs and returns the pair whose
// centers maximize the Manhattan distance. Ties keep the first pair found.
func farthestPair(rooms []Room) (int, int) {
	bestI, bestJ := 0, 1
	bestDist := -1
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			d := grid.Manhattan(rooms[i].Center(), rooms[j].Center())
			if d > bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}
