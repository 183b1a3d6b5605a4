package dungeon

import (
	"log/slog"

	"github.com/stonehall/dungeongen/internal/grid"
)

// HeightRepairer iteratively adjusts the elevation field until the path
// validator succeeds. It is the only pipeline stage that mutates an earlier
// stage's output.
type HeightRepairer struct {
	validator   *PathValidator
	maxAttempts int
	log         *slog.Logger
}

// NewHeightRepairer creates a repairer with the given attempt budget.
func NewHeightRepairer(validator *PathValidator, maxAttempts int, log *slog.Logger) *HeightRepairer {
	return &HeightRepairer{validator: validator, maxAttempts: maxAttempts, log: log}
}

// EnsurePath validates and repairs up to maxAttempts times. Blocked edges
// are leveled by moving both endpoints toward each other by half the excess
// delta; a blocked result with no offending edges means disconnected
// components, which are handled by flattening the entrance and exit
// neighborhoods to height 1. Returns ErrNoPath when the budget runs out.
func (r *HeightRepairer) EnsurePath(c *grid.Canvas, elev *grid.ElevationField, features *grid.FeatureField, entrance, exit grid.Point) ([]grid.Point, error) {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		res := r.validator.Validate(c, elev, features, entrance, exit)
		if res.State == StateFound {
			r.log.Debug("path validated", "attempt", attempt, "length", len(res.Path))
			return res.Path, nil
		}
		if len(res.Blocked) > 0 {
			r.log.Debug("repairing blocked edges", "attempt", attempt, "edges", len(res.Blocked))
			r.adjust(elev, res.Blocked)
		} else {
			r.log.Debug("disconnected endpoints, flattening neighborhoods", "attempt", attempt)
			r.flatten(c, elev, entrance)
			r.flatten(c, elev, exit)
		}
	}

	res := r.validator.Validate(c, elev, features, entrance, exit)
	if res.State == StateFound {
		return res.Path, nil
	}
	return nil, ErrNoPath
}

// adjust levels each offending edge: the lower endpoint rises and the
// higher endpoint drops by half the excess, rounded up, floor-clamped to 1.
// Heights 2 and 10 with a limit of 4 become 4 and 8.
func (r *HeightRepairer) adjust(elev *grid.ElevationField, blocked []BlockedEdge) {
	limit := r.validator.maxHeightDiff
	for _, e := range blocked {
		h1 := cellHeight(elev, e.From.X, e.From.Y)
		h2 := cellHeight(elev, e.To.X, e.To.Y)
		diff := absDiff(h1, h2)
		if diff <= limit {
			continue
		}
		adjustment := (diff - limit + 1) / 2
		if h1 < h2 {
			h1 += adjustment
			h2 -= adjustment
		} else {
			h1 -= adjustment
			h2 += adjustment
		}
		elev.Set(e.From.X, e.From.Y, max(1, h1))
		elev.Set(e.To.X, e.To.Y, max(1, h2))
	}
}

// flatten forces the cell and its eight floor neighbors to height 1.
func (r *HeightRepairer) flatten(c *grid.Canvas, elev *grid.ElevationField, p grid.Point) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := p.X+dx, p.Y+dy
			if c.IsFloor(nx, ny) {
				elev.Set(nx, ny, 1)
			}
		}
	}
}
