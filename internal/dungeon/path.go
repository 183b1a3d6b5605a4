package dungeon

import (
	"github.com/stonehall/dungeongen/internal/grid"
)

// SearchState is the terminal state of a path validation run.
type SearchState int

const (
	// StateSearching is the initial state while the BFS frontier is live.
	StateSearching SearchState = iota
	// StateFound means a height-legal path from entrance to exit exists.
	StateFound
	// StateBlocked means the BFS exhausted its frontier without reaching
	// the exit.
	StateBlocked
)

// BlockedEdge is a frontier edge whose height delta exceeded the limit.
// Both endpoints are floor cells; Delta is the offending height difference.
type BlockedEdge struct {
	From  grid.Point
	To    grid.Point
	Delta int
}

// PathResult carries the outcome of a validation run: the path on
// StateFound, the blocked frontier edges on StateBlocked. An empty Blocked
// list on StateBlocked means the entrance and exit sit in disconnected
// components.
type PathResult struct {
	State   SearchState
	Path    []grid.Point
	Blocked []BlockedEdge
}

// PathValidator runs a height-constrained breadth-first search between the
// entrance and the exit. An edge between 4-adjacent floor cells is
// traversable iff the elevation delta is at most maxHeightDiff.
type PathValidator struct {
	maxHeightDiff int
}

// NewPathValidator creates a validator with the given climb limit.
func NewPathValidator(maxHeightDiff int) *PathValidator {
	return &PathValidator{maxHeightDiff: maxHeightDiff}
}

// Validate searches from entrance to exit. On success it tags every
// untagged path cell as FeaturePath and restores the entrance/exit tags the
// BFS may have crossed, then returns the ordered cell sequence. On failure
// it returns every frontier edge that was rejected for its height delta.
func (v *PathValidator) Validate(c *grid.Canvas, elev *grid.ElevationField, features *grid.FeatureField, entrance, exit grid.Point) PathResult {
	visited := make([][]bool, c.Height)
	for y := range visited {
		visited[y] = make([]bool, c.Width)
	}
	parent := make(map[grid.Point]grid.Point)

	queue := []grid.Point{entrance}
	visited[entrance.Y][entrance.X] = true

	state := StateSearching
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			state = StateFound
			break
		}
		curH := cellHeight(elev, cur.X, cur.Y)
		for _, off := range grid.CardinalOffsets {
			nx, ny := cur.X+off.X, cur.Y+off.Y
			if !c.IsFloor(nx, ny) || visited[ny][nx] {
				continue
			}
			if absDiff(cellHeight(elev, nx, ny), curH) > v.maxHeightDiff {
				continue
			}
			visited[ny][nx] = true
			next := grid.Point{X: nx, Y: ny}
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	if state != StateFound {
		return PathResult{State: StateBlocked, Blocked: v.blockedEdges(c, elev, visited)}
	}

	path := reconstruct(parent, entrance, exit)
	for _, p := range path {
		features.Tag(p.X, p.Y, grid.FeaturePath)
	}
	// The BFS may have rolled over the endpoints; their tags win.
	features.Set(entrance.X, entrance.Y, grid.FeatureEntrance)
	features.Set(exit.X, exit.Y, grid.FeatureExit)

	return PathResult{State: StateFound, Path: path}
}

// blockedEdges collects every edge from a visited cell to an unvisited
// floor neighbor that was rejected for its height delta.
func (v *PathValidator) blockedEdges(c *grid.Canvas, elev *grid.ElevationField, visited [][]bool) []BlockedEdge {
	var blocked []BlockedEdge
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if !visited[y][x] || !c.IsFloor(x, y) {
				continue
			}
			curH := cellHeight(elev, x, y)
			for _, off := range grid.CardinalOffsets {
				nx, ny := x+off.X, y+off.Y
				if !c.IsFloor(nx, ny) || visited[ny][nx] {
					continue
				}
				delta := absDiff(cellHeight(elev, nx, ny), curH)
				if delta > v.maxHeightDiff {
					blocked = append(blocked, BlockedEdge{
						From:  grid.Point{X: x, Y: y},
						To:    grid.Point{X: nx, Y: ny},
						Delta: delta,
					})
				}
			}
		}
	}
	return blocked
}

func reconstruct(parent map[grid.Point]grid.Point, entrance, exit grid.Point) []grid.Point {
	var path []grid.Point
	for cur := exit; cur != entrance; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, entrance)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// cellHeight guards against unleveled cells; floor is never below 1.
func cellHeight(elev *grid.ElevationField, x, y int) int {
	if h := elev.Get(x, y); h > 0 {
		return h
	}
	return 1
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
