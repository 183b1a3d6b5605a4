package dungeon

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/stonehall/dungeongen/internal/config"
	"github.com/stonehall/dungeongen/internal/grid"
)

var (
	// ErrInsufficientRooms means fewer than two rooms fit on the canvas.
	ErrInsufficientRooms = errors.New("dungeon: fewer than two rooms placed")
	// ErrPlacementFailed means the entrance and exit could not be placed.
	ErrPlacementFailed = errors.New("dungeon: could not place entrance and exit")
	// ErrNoPath means the height repair budget ran out without a valid path.
	ErrNoPath = errors.New("dungeon: height repair exhausted without a path")
	// ErrGenerationFailed means every whole-pipeline attempt failed.
	ErrGenerationFailed = errors.New("dungeon: all generation attempts failed")
)

// Result is the aggregate of one successful generation attempt. It is
// assembled once, returned to the caller, and treated as immutable from
// then on.
type Result struct {
	Seed      int64
	Canvas    *grid.Canvas
	Rooms     []Room
	Corridors [][]grid.Point
	Elevation *grid.ElevationField
	Features  *grid.FeatureField
	Entrance  grid.Point
	Exit      grid.Point
	Path      []grid.Point
	Monsters  []Monster
}

// Generator runs the whole pipeline. Attempts are all-or-nothing: a failed
// attempt discards everything it built and the next attempt starts from
// room placement, up to the configured budget.
type Generator struct {
	cfg   *config.Generation
	seed  int64
	tiers TierTable
	log   *slog.Logger
}

// New creates a generator. The seed fully determines the output; the same
// seed and configuration always reproduce the identical result. A nil
// logger discards all progress events.
func New(cfg *config.Generation, seed int64, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cfg: cfg, seed: seed, tiers: DefaultTierTable(), log: log}
}

// Generate runs bounded whole-pipeline attempts until one succeeds.
func (g *Generator) Generate() (*Result, error) {
	rng := rand.New(rand.NewSource(g.seed))

	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxGenerationAttempts; attempt++ {
		res, err := g.attempt(rng)
		if err != nil {
			lastErr = err
			g.log.Warn("generation attempt failed", "attempt", attempt, "error", err)
			continue
		}
		g.log.Info("dungeon generated",
			"attempt", attempt,
			"rooms", len(res.Rooms),
			"path_length", len(res.Path),
			"monsters", len(res.Monsters))
		return res, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, g.cfg.MaxGenerationAttempts, lastErr)
}

// attempt runs the pipeline stages in dependency order.
func (g *Generator) attempt(rng *rand.Rand) (*Result, error) {
	canvas := grid.NewCanvas(g.cfg.Width, g.cfg.Height)
	features := grid.NewFeatureField(g.cfg.Width, g.cfg.Height)

	rooms, err := NewRoomPlacer(g.cfg, rng).Place(canvas)
	if err != nil {
		return nil, err
	}
	g.log.Debug("rooms placed", "count", len(rooms))

	corridors := NewCorridorConnector(rng, g.cfg.CorridorWidths, g.cfg.ExtraConnectionProb).Connect(canvas, rooms)
	g.log.Debug("corridors carved", "count", len(corridors))

	elev := NewElevationBuilder(g.cfg, rng).Build(canvas, rooms, corridors, features)

	entrance, exit, err := NewEntranceExitSelector(rng).Select(canvas, rooms, elev, features)
	if err != nil {
		return nil, err
	}
	g.log.Debug("endpoints selected", "entrance", entrance, "exit", exit,
		"distance", grid.Manhattan(entrance, exit))

	validator := NewPathValidator(g.cfg.MaxHeightDiff)
	path, err := NewHeightRepairer(validator, g.cfg.MaxRepairAttempts, g.log).
		EnsurePath(canvas, elev, features, entrance, exit)
	if err != nil {
		return nil, err
	}

	NewFeatureAnnotator(g.cfg, rng).Annotate(canvas, rooms, corridors, elev, features)
	monsters := NewMonsterPopulator(g.cfg, rng, g.tiers).Populate(canvas, rooms, features, entrance, exit)

	return &Result{
		Seed:      g.seed,
		Canvas:    canvas,
		Rooms:     rooms,
		Corridors: corridors,
		Elevation: elev,
		Features:  features,
		Entrance:  entrance,
		Exit:      exit,
		Path:      path,
		Monsters:  monsters,
	}, nil
}
