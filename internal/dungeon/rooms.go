// Package dungeon implements the generation pipeline: room placement,
// corridor connection, elevation, entrance/exit selection, path validation
// with height repair, feature annotation, and monster population.
package dungeon

import (
	"math/rand"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

// Room is an axis-aligned rectangular area carved into the canvas.
type Room struct {
	ID     int
	X, Y   int
	W, H   int
}

// Center returns the room's center cell.
func (r Room) Center() grid.Point {
	return grid.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the room's cell count.
func (r Room) Area() int {
	return r.W * r.H
}

// Contains reports whether (x, y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// InteriorContains reports whether (x, y) lies strictly inside the room,
// excluding its one-cell border.
func (r Room) InteriorContains(x, y int) bool {
	return x > r.X && x < r.X+r.W-1 && y > r.Y && y < r.Y+r.H-1
}

// RoomPlacer rejection-samples non-overlapping rooms onto the canvas.
type RoomPlacer struct {
	cfg *config.Generation
	rng *rand.Rand
}

// NewRoomPlacer creates a placer drawing from the given random source.
func NewRoomPlacer(cfg *config.Generation, rng *rand.Rand) *RoomPlacer {
	return &RoomPlacer{cfg: cfg, rng: rng}
}

// Place carves up to cfg.RoomCount rooms into the canvas. A candidate is
// accepted only when it keeps at least MinRoomDistance clearance from every
// accepted room on at least one axis. It fails with ErrInsufficientRooms
// when fewer than two rooms fit within the attempt budget.
func (p *RoomPlacer) Place(c *grid.Canvas) ([]Room, error) {
	var rooms []Room
	attempts := 0

	for len(rooms) < p.cfg.RoomCount && attempts < p.cfg.MaxPlacementAttempts {
		attempts++

		w := p.randSize()
		h := p.randSize()

		// Keep a one-cell wall margin on every side.
		maxX := c.Width - w - 2
		maxY := c.Height - h - 2
		if maxX < 1 || maxY < 1 {
			continue
		}
		x := p.rng.Intn(maxX) + 1
		y := p.rng.Intn(maxY) + 1

		if p.tooClose(rooms, x, y, w, h) {
			continue
		}

		for ry := y; ry < y+h; ry++ {
			for rx := x; rx < x+w; rx++ {
				c.Carve(rx, ry)
			}
		}
		rooms = append(rooms, Room{ID: len(rooms), X: x, Y: y, W: w, H: h})
	}

	if len(rooms) < 2 {
		return nil, ErrInsufficientRooms
	}
	return rooms, nil
}

func (p *RoomPlacer) randSize() int {
	if p.cfg.RoomMax <= p.cfg.RoomMin {
		return p.cfg.RoomMin
	}
	return p.rng.Intn(p.cfg.RoomMax-p.cfg.RoomMin+1) + p.cfg.RoomMin
}

// tooClose reports whether the candidate rectangle violates the minimum
// room distance against any accepted room. Two rooms are acceptable when
// they are separated by at least MinRoomDistance on the x or y axis.
func (p *RoomPlacer) tooClose(rooms []Room, x, y, w, h int) bool {
	d := p.cfg.MinRoomDistance
	for _, r := range rooms {
		separated := x+w+d <= r.X || r.X+r.W+d <= x ||
			y+h+d <= r.Y || r.Y+r.H+d <= y
		if !separated {
			return true
		}
	}
	return false
}
