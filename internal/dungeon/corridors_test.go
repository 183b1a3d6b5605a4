package dungeon

import (
	"math/rand"
	"testing"

	"github.com/stonehall/dungeongen/internal/grid"
)

func TestCorridorConnectorConnectsAllRooms(t *testing.T) {
	cfg := placerConfig()
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := grid.NewCanvas(cfg.Width, cfg.Height)
		rooms, err := NewRoomPlacer(cfg, rng).Place(c)
		if err != nil {
			t.Fatalf("seed %d: Place() failed: %v", seed, err)
		}

		corridors := NewCorridorConnector(rng, cfg.CorridorWidths, cfg.ExtraConnectionProb).Connect(c, rooms)
		if len(corridors) < len(rooms)-1 {
			t.Errorf("seed %d: %d corridors for %d rooms, want at least %d",
				seed, len(corridors), len(rooms), len(rooms)-1)
		}

		reachable := floodFill(c, rooms[0].Center())
		for i, r := range rooms {
			if !reachable[r.Center()] {
				t.Errorf("seed %d: room %d is not reachable from room 0", seed, i)
			}
		}
	}
}

func TestCorridorCellsAreFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := placerConfig()
	c := grid.NewCanvas(cfg.Width, cfg.Height)
	rooms, err := NewRoomPlacer(cfg, rng).Place(c)
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}

	corridors := NewCorridorConnector(rng, []int{1, 2}, 0.3).Connect(c, rooms)
	for ci, corridor := range corridors {
		seen := make(map[grid.Point]bool)
		for _, p := range corridor {
			if !c.IsFloor(p.X, p.Y) {
				t.Errorf("corridor %d cell (%d, %d) is not floor", ci, p.X, p.Y)
			}
			if seen[p] {
				t.Errorf("corridor %d repeats cell (%d, %d)", ci, p.X, p.Y)
			}
			seen[p] = true
		}
	}
}

func TestCorridorConnectorNeedsTwoRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := grid.NewCanvas(20, 20)
	if got := NewCorridorConnector(rng, []int{1}, 0.5).Connect(c, []Room{{ID: 0, X: 2, Y: 2, W: 4, H: 4}}); got != nil {
		t.Errorf("Connect() with one room = %v, want nil", got)
	}
}

// floodFill returns every floor cell 4-connected to start.
func floodFill(c *grid.Canvas, start grid.Point) map[grid.Point]bool {
	reachable := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range c.FloorNeighbors(cur.X, cur.Y) {
			if !reachable[n] {
				reachable[n] = true
				queue = append(queue, n)
			}
		}
	}
	return reachable
}
