package dungeon

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stonehall/dungeongen/internal/grid"
)

// strip carves a single 1-cell-high corridor with the given heights and
// returns the canvas, elevation field, and endpoint cells.
func strip(heights []int) (*grid.Canvas, *grid.ElevationField, grid.Point, grid.Point) {
	c := grid.NewCanvas(len(heights), 1)
	elev := grid.NewElevationField(len(heights), 1)
	for x, h := range heights {
		c.Carve(x, 0)
		elev.Set(x, 0, h)
	}
	return c, elev, grid.Point{X: 0, Y: 0}, grid.Point{X: len(heights) - 1, Y: 0}
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPathValidatorFound(t *testing.T) {
	c, elev, entrance, exit := strip([]int{1, 2, 3, 4})
	features := grid.NewFeatureField(c.Width, c.Height)
	features.Set(entrance.X, entrance.Y, grid.FeatureEntrance)
	features.Set(exit.X, exit.Y, grid.FeatureExit)

	res := NewPathValidator(4).Validate(c, elev, features, entrance, exit)
	if res.State != StateFound {
		t.Fatalf("State = %v, want StateFound", res.State)
	}
	if len(res.Path) != 4 {
		t.Fatalf("path length = %d, want 4", len(res.Path))
	}
	if res.Path[0] != entrance || res.Path[len(res.Path)-1] != exit {
		t.Errorf("path runs %v..%v, want %v..%v",
			res.Path[0], res.Path[len(res.Path)-1], entrance, exit)
	}

	// Intermediate cells are tagged path; the endpoint tags survive.
	if got := features.Get(1, 0); got != grid.FeaturePath {
		t.Errorf("cell (1, 0) tag = %v, want path", got)
	}
	if got := features.Get(entrance.X, entrance.Y); got != grid.FeatureEntrance {
		t.Errorf("entrance tag = %v, want entrance", got)
	}
	if got := features.Get(exit.X, exit.Y); got != grid.FeatureExit {
		t.Errorf("exit tag = %v, want exit", got)
	}
}

func TestPathValidatorBlockedReportsEdges(t *testing.T) {
	c, elev, entrance, exit := strip([]int{1, 2, 10, 10})
	features := grid.NewFeatureField(c.Width, c.Height)

	res := NewPathValidator(4).Validate(c, elev, features, entrance, exit)
	if res.State != StateBlocked {
		t.Fatalf("State = %v, want StateBlocked", res.State)
	}
	if len(res.Blocked) != 1 {
		t.Fatalf("blocked edges = %d, want 1", len(res.Blocked))
	}
	e := res.Blocked[0]
	if e.From != (grid.Point{X: 1, Y: 0}) || e.To != (grid.Point{X: 2, Y: 0}) {
		t.Errorf("blocked edge %v -> %v, want (1,0) -> (2,0)", e.From, e.To)
	}
	if e.Delta != 8 {
		t.Errorf("blocked delta = %d, want 8", e.Delta)
	}
}

func TestHeightRepairerAdjustsAndFindsPath(t *testing.T) {
	c, elev, entrance, exit := strip([]int{1, 2, 10, 10})
	features := grid.NewFeatureField(c.Width, c.Height)

	repairer := NewHeightRepairer(NewPathValidator(4), 10, discard())
	path, err := repairer.EnsurePath(c, elev, features, entrance, exit)
	if err != nil {
		t.Fatalf("EnsurePath() failed: %v", err)
	}
	if len(path) != 4 {
		t.Errorf("path length = %d, want 4", len(path))
	}

	// Heights 2 and 10 with limit 4 become 4 and 8: excess 4, both
	// endpoints moved by 2.
	if got := elev.Get(1, 0); got != 4 {
		t.Errorf("lower endpoint = %d, want 4", got)
	}
	if got := elev.Get(2, 0); got != 8 {
		t.Errorf("higher endpoint = %d, want 8", got)
	}
}

func TestHeightRepairerDisconnectedComponents(t *testing.T) {
	// A wall splits the strip; no amount of leveling can connect it.
	c := grid.NewCanvas(5, 1)
	elev := grid.NewElevationField(5, 1)
	for _, x := range []int{0, 1, 3, 4} {
		c.Carve(x, 0)
		elev.Set(x, 0, 1)
	}
	features := grid.NewFeatureField(5, 1)

	repairer := NewHeightRepairer(NewPathValidator(4), 3, discard())
	_, err := repairer.EnsurePath(c, elev, features, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 0})
	if !errors.Is(err, ErrNoPath) {
		t.Fatalf("EnsurePath() error = %v, want ErrNoPath", err)
	}
}

func TestHeightRepairerConvergesOverRounds(t *testing.T) {
	// A single tall spike needs more than one repair round: each round
	// levels the frontier edge the BFS ran into.
	c, elev, entrance, exit := strip([]int{1, 20, 1})
	features := grid.NewFeatureField(c.Width, c.Height)

	repairer := NewHeightRepairer(NewPathValidator(4), 10, discard())
	path, err := repairer.EnsurePath(c, elev, features, entrance, exit)
	if err != nil {
		t.Fatalf("EnsurePath() failed: %v", err)
	}
	if len(path) != 3 {
		t.Errorf("path length = %d, want 3", len(path))
	}

	// The repaired strip obeys the climb limit everywhere.
	for x := 0; x < 2; x++ {
		if d := absDiff(elev.Get(x, 0), elev.Get(x+1, 0)); d > 4 {
			t.Errorf("delta between x=%d and x=%d is %d, want <= 4", x, x+1, d)
		}
	}
}
