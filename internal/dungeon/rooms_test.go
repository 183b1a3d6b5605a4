package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

func placerConfig() *config.Generation {
	cfg := config.Default()
	cfg.Width = 60
	cfg.Height = 50
	cfg.RoomCount = 6
	cfg.RoomMin = 4
	cfg.RoomMax = 8
	cfg.MinRoomDistance = 3
	cfg.MaxPlacementAttempts = 200
	return cfg
}

func TestRoomPlacerPlacesRooms(t *testing.T) {
	cfg := placerConfig()
	c := grid.NewCanvas(cfg.Width, cfg.Height)
	rooms, err := NewRoomPlacer(cfg, rand.New(rand.NewSource(42))).Place(c)
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if len(rooms) < 2 {
		t.Fatalf("placed %d rooms, want at least 2", len(rooms))
	}

	for i, r := range rooms {
		if r.ID != i {
			t.Errorf("room %d has ID %d", i, r.ID)
		}
		if r.W < cfg.RoomMin || r.W > cfg.RoomMax || r.H < cfg.RoomMin || r.H > cfg.RoomMax {
			t.Errorf("room %d size %dx%d outside [%d, %d]", i, r.W, r.H, cfg.RoomMin, cfg.RoomMax)
		}
		if r.X < 1 || r.Y < 1 || r.X+r.W > cfg.Width-1 || r.Y+r.H > cfg.Height-1 {
			t.Errorf("room %d at (%d, %d) %dx%d breaks the wall margin", i, r.X, r.Y, r.W, r.H)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if !c.IsFloor(x, y) {
					t.Fatalf("room %d cell (%d, %d) not carved", i, x, y)
				}
			}
		}
	}
}

func TestRoomPlacerMinDistance(t *testing.T) {
	cfg := placerConfig()
	for seed := int64(0); seed < 5; seed++ {
		c := grid.NewCanvas(cfg.Width, cfg.Height)
		rooms, err := NewRoomPlacer(cfg, rand.New(rand.NewSource(seed))).Place(c)
		if err != nil {
			t.Fatalf("seed %d: Place() failed: %v", seed, err)
		}
		assertRoomSeparation(t, rooms, cfg.MinRoomDistance)
	}
}

func TestRoomPlacerInsufficientRooms(t *testing.T) {
	cfg := placerConfig()
	cfg.Width = 12
	cfg.Height = 12
	cfg.RoomMin = 10
	cfg.RoomMax = 10

	c := grid.NewCanvas(cfg.Width, cfg.Height)
	_, err := NewRoomPlacer(cfg, rand.New(rand.NewSource(1))).Place(c)
	if !errors.Is(err, ErrInsufficientRooms) {
		t.Fatalf("Place() error = %v, want ErrInsufficientRooms", err)
	}
}

// assertRoomSeparation checks that every room pair keeps at least d cells of
// clearance on the x or y axis.
func assertRoomSeparation(t *testing.T, rooms []Room, d int) {
	t.Helper()
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			separated := a.X+a.W+d <= b.X || b.X+b.W+d <= a.X ||
				a.Y+a.H+d <= b.Y || b.Y+b.H+d <= a.Y
			if !separated {
				t.Errorf("rooms %d and %d violate the minimum distance %d", i, j, d)
			}
		}
	}
}
