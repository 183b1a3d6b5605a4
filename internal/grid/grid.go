// Package grid provides the spatial containers shared by the dungeon
// pipeline: the floor/wall canvas, the per-cell elevation field, and the
// per-cell feature field. All containers are indexed [y][x] with (0,0) at
// the top-left corner.
package grid

// Point identifies a single cell. X is the column, Y is the row.
type Point struct {
	X int
	Y int
}

// Manhattan returns the Manhattan distance between two points.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Chebyshev returns the Chebyshev distance between two points.
func Chebyshev(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// CardinalOffsets are the four 4-adjacent neighbor offsets in scan order.
var CardinalOffsets = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// DiagonalOffsets are the four diagonal neighbor offsets.
var DiagonalOffsets = [4]Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Canvas is the boolean floor/wall map. Cells default to wall; rooms and
// corridors carve floor into it. After the layout phase it is treated as
// read-only by every later pipeline stage.
type Canvas struct {
	Width  int
	Height int
	floor  [][]bool
}

// NewCanvas creates an all-wall canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	floor := make([][]bool, height)
	for y := range floor {
		floor[y] = make([]bool, width)
	}
	return &Canvas{Width: width, Height: height, floor: floor}
}

// InBounds reports whether (x, y) lies inside the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// IsFloor reports whether (x, y) is a carved floor cell. Out-of-bounds
// coordinates are walls.
func (c *Canvas) IsFloor(x, y int) bool {
	return c.InBounds(x, y) && c.floor[y][x]
}

// Carve marks (x, y) as floor. Out-of-bounds coordinates are ignored.
func (c *Canvas) Carve(x, y int) {
	if c.InBounds(x, y) {
		c.floor[y][x] = true
	}
}

// FloorCount returns the number of floor cells.
func (c *Canvas) FloorCount() int {
	count := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.floor[y][x] {
				count++
			}
		}
	}
	return count
}

// FloorNeighbors returns the 4-adjacent floor neighbors of (x, y) in scan
// order.
func (c *Canvas) FloorNeighbors(x, y int) []Point {
	var neighbors []Point
	for _, off := range CardinalOffsets {
		nx, ny := x+off.X, y+off.Y
		if c.IsFloor(nx, ny) {
			neighbors = append(neighbors, Point{nx, ny})
		}
	}
	return neighbors
}

// ElevationField holds the per-cell integer height. Floor cells carry a
// height of at least 1 once the elevation builder has run; wall cells stay
// at 0. Only the height repair loop mutates it after construction.
type ElevationField struct {
	Width  int
	Height int
	cells  [][]int
}

// NewElevationField creates a zeroed elevation field.
func NewElevationField(width, height int) *ElevationField {
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}
	return &ElevationField{Width: width, Height: height, cells: cells}
}

// Get returns the height at (x, y), or 0 when out of bounds.
func (e *ElevationField) Get(x, y int) int {
	if x < 0 || x >= e.Width || y < 0 || y >= e.Height {
		return 0
	}
	return e.cells[y][x]
}

// Set stores the height at (x, y). Out-of-bounds coordinates are ignored.
func (e *ElevationField) Set(x, y, h int) {
	if x >= 0 && x < e.Width && y >= 0 && y < e.Height {
		e.cells[y][x] = h
	}
}

// FeatureField holds the single categorical tag of every cell. A cell can
// only ever hold one tag; Tag enforces first-writer-wins, Set is the
// explicit override used when a stage owns the cell (entrance/exit restore,
// monster placement on path cells).
type FeatureField struct {
	Width  int
	Height int
	cells  [][]Feature
}

// NewFeatureField creates a field with every cell tagged FeatureNone.
func NewFeatureField(width, height int) *FeatureField {
	cells := make([][]Feature, height)
	for y := range cells {
		cells[y] = make([]Feature, width)
	}
	return &FeatureField{Width: width, Height: height, cells: cells}
}

// Get returns the tag at (x, y), or FeatureNone when out of bounds.
func (f *FeatureField) Get(x, y int) Feature {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return FeatureNone
	}
	return f.cells[y][x]
}

// Tag writes feat at (x, y) only if the cell is still untagged. It reports
// whether the write happened.
func (f *FeatureField) Tag(x, y int, feat Feature) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	if f.cells[y][x] != FeatureNone {
		return false
	}
	f.cells[y][x] = feat
	return true
}

// Set writes feat at (x, y) unconditionally, replacing any existing tag.
func (f *FeatureField) Set(x, y int, feat Feature) {
	if x >= 0 && x < f.Width && y >= 0 && y < f.Height {
		f.cells[y][x] = feat
	}
}
