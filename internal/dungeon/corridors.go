package dungeon

import (
	"math/rand"
	"sort"

	"github.com/stonehall/dungeongen/internal/grid"
)

// roomEdge is a candidate corridor between two rooms, weighted by the
// Manhattan distance of their centers.
type roomEdge struct {
	dist int
	i, j int
}

// CorridorConnector joins the rooms into a single connected component and
// then adds a fraction of the remaining edges back as redundant loops.
type CorridorConnector struct {
	rng       *rand.Rand
	widths    []int
	extraProb float64
}

// NewCorridorConnector creates a connector. widths holds the corridor
// widths to draw from; extraProb is the fraction of non-tree edges added as
// loops.
func NewCorridorConnector(rng *rand.Rand, widths []int, extraProb float64) *CorridorConnector {
	return &CorridorConnector{rng: rng, widths: widths, extraProb: extraProb}
}

// Connect carves corridors between room centers. A minimum spanning tree
// over center distances guarantees connectivity; redundant edges are then
// shuffled and a configurable fraction of them carved as loops. Returns one
// cell set per carved corridor.
func (cc *CorridorConnector) Connect(c *grid.Canvas, rooms []Room) [][]grid.Point {
	if len(rooms) < 2 {
		return nil
	}

	centers := make([]grid.Point, len(rooms))
	for i, r := range rooms {
		centers[i] = r.Center()
	}

	var edges []roomEdge
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, roomEdge{dist: grid.Manhattan(centers[i], centers[j]), i: i, j: j})
		}
	}
	// Ties keep discovery order.
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].dist < edges[b].dist })

	var corridors [][]grid.Point
	connected := map[int]bool{0: true}
	used := make([]bool, len(edges))

	// Every room has an edge to room 0, so one ascending pass over the
	// complete edge list connects everything.
	for idx, e := range edges {
		if len(connected) == len(rooms) {
			break
		}
		if connected[e.i] == connected[e.j] {
			continue
		}
		connected[e.i] = true
		connected[e.j] = true
		used[idx] = true
		if points := cc.carve(c, centers[e.i], centers[e.j]); len(points) > 0 {
			corridors = append(corridors, points)
		}
	}

	var remaining []roomEdge
	for idx, e := range edges {
		if !used[idx] {
			remaining = append(remaining, e)
		}
	}
	cc.rng.Shuffle(len(remaining), func(a, b int) {
		remaining[a], remaining[b] = remaining[b], remaining[a]
	})
	extra := int(float64(len(remaining)) * cc.extraProb)
	for k := 0; k < extra; k++ {
		e := remaining[k]
		if points := cc.carve(c, centers[e.i], centers[e.j]); len(points) > 0 {
			corridors = append(corridors, points)
		}
	}

	return corridors
}

// carve digs a corridor between two cells, randomly L-shaped (both axis
// orders) or Z-shaped through a random midpoint. Every touched cell is
// marked floor and recorded once.
func (cc *CorridorConnector) carve(c *grid.Canvas, from, to grid.Point) []grid.Point {
	width := cc.widths[cc.rng.Intn(len(cc.widths))]

	var points []grid.Point
	seen := make(map[grid.Point]bool)
	add := func(x, y int) {
		if !c.InBounds(x, y) {
			return
		}
		c.Carve(x, y)
		p := grid.Point{X: x, Y: y}
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	vertical := func(x, y1, y2 int) {
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			for off := 0; off < width; off++ {
				add(x+off, y)
			}
		}
	}
	horizontal := func(y, x1, x2 int) {
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			for off := 0; off < width; off++ {
				add(x, y+off)
			}
		}
	}

	if cc.rng.Float64() < 0.7 {
		// L-shape, axis order randomized.
		if cc.rng.Float64() < 0.5 {
			vertical(from.X, from.Y, to.Y)
			horizontal(to.Y, from.X, to.X)
		} else {
			horizontal(from.Y, from.X, to.X)
			vertical(to.X, from.Y, to.Y)
		}
	} else {
		// Z-shape through a random midpoint.
		midX := from.X
		if from.X != to.X {
			midX = min(from.X, to.X) + cc.rng.Intn(abs(to.X-from.X)+1)
		}
		midY := from.Y
		if from.Y != to.Y {
			midY = min(from.Y, to.Y) + cc.rng.Intn(abs(to.Y-from.Y)+1)
		}
		vertical(from.X, from.Y, midY)
		horizontal(midY, from.X, midX)
		vertical(midX, midY, to.Y)
		horizontal(to.Y, midX, to.X)
	}

	return points
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
