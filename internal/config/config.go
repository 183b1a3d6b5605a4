// Package config holds the generation parameters and their YAML loading.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Generation holds every tunable knob of the dungeon pipeline. The
// probability constants are empirically chosen defaults, not invariants;
// callers may override any of them through the YAML file or flags.
type Generation struct {
	// Canvas dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Room placement.
	RoomCount            int `yaml:"room_count"`
	RoomMin              int `yaml:"room_min"`
	RoomMax              int `yaml:"room_max"`
	MinRoomDistance      int `yaml:"min_room_distance"`
	MaxPlacementAttempts int `yaml:"max_placement_attempts"`

	// Corridors.
	CorridorWidths      []int   `yaml:"corridor_widths"`
	ExtraConnectionProb float64 `yaml:"extra_connection_prob"`

	// Elevation.
	Smoothness        int `yaml:"smoothness"`
	MaxHeight         int `yaml:"max_height"`
	CorridorHeightMin int `yaml:"corridor_height_min"`
	CorridorHeightMax int `yaml:"corridor_height_max"`
	MaxHeightDiff     int `yaml:"max_height_diff"`

	// Terrain features.
	ObstacleProb           float64 `yaml:"obstacle_prob"`
	ObstacleHeightMin      int     `yaml:"obstacle_height_min"`
	ObstacleHeightMax      int     `yaml:"obstacle_height_max"`
	TrapProbEdge           float64 `yaml:"trap_prob_edge"`
	TrapProbCorridorCenter float64 `yaml:"trap_prob_corridor_center"`
	SecretHintProb         float64 `yaml:"secret_hint_prob"`
	TreasureProb           float64 `yaml:"treasure_prob"`

	// Monsters.
	MonsterDensity      float64 `yaml:"monster_density"`
	BossRoomProb        float64 `yaml:"boss_room_prob"`
	CorridorMonsterProb float64 `yaml:"corridor_monster_prob"`

	// Retry budgets.
	MaxRepairAttempts     int `yaml:"max_repair_attempts"`
	MaxGenerationAttempts int `yaml:"max_generation_attempts"`
}

// Default returns the standard generation parameters.
func Default() *Generation {
	return &Generation{
		Width:                  70,
		Height:                 60,
		RoomCount:              7,
		RoomMin:                8,
		RoomMax:                15,
		MinRoomDistance:        5,
		MaxPlacementAttempts:   200,
		CorridorWidths:         []int{1, 2},
		ExtraConnectionProb:    0.35,
		Smoothness:             3,
		MaxHeight:              18,
		CorridorHeightMin:      1,
		CorridorHeightMax:      4,
		MaxHeightDiff:          4,
		ObstacleProb:           0.05,
		ObstacleHeightMin:      1,
		ObstacleHeightMax:      3,
		TrapProbEdge:           0.015,
		TrapProbCorridorCenter: 0.005,
		SecretHintProb:         0.1,
		TreasureProb:           0.02,
		MonsterDensity:         0.15,
		BossRoomProb:           0.7,
		CorridorMonsterProb:    0.05,
		MaxRepairAttempts:      10,
		MaxGenerationAttempts:  5,
	}
}

// Load reads generation parameters from a YAML file. A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (*Generation, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects parameter combinations the pipeline cannot work with.
func (c *Generation) Validate() error {
	if c.Width < 5 || c.Height < 5 {
		return fmt.Errorf("canvas %dx%d is too small", c.Width, c.Height)
	}
	if c.RoomCount < 1 {
		return fmt.Errorf("room_count must be at least 1, got %d", c.RoomCount)
	}
	if c.RoomMin < 1 || c.RoomMax < c.RoomMin {
		return fmt.Errorf("invalid room size range [%d, %d]", c.RoomMin, c.RoomMax)
	}
	if c.MinRoomDistance < 0 {
		return fmt.Errorf("min_room_distance must not be negative, got %d", c.MinRoomDistance)
	}
	if c.MaxPlacementAttempts < 1 {
		return fmt.Errorf("max_placement_attempts must be at least 1, got %d", c.MaxPlacementAttempts)
	}
	if len(c.CorridorWidths) == 0 {
		return fmt.Errorf("corridor_widths must not be empty")
	}
	for _, w := range c.CorridorWidths {
		if w < 1 {
			return fmt.Errorf("corridor width must be at least 1, got %d", w)
		}
	}
	if c.MaxHeight < 1 {
		return fmt.Errorf("max_height must be at least 1, got %d", c.MaxHeight)
	}
	if c.CorridorHeightMin < 1 || c.CorridorHeightMax < c.CorridorHeightMin {
		return fmt.Errorf("invalid corridor height range [%d, %d]", c.CorridorHeightMin, c.CorridorHeightMax)
	}
	if c.MaxHeightDiff < 1 {
		return fmt.Errorf("max_height_diff must be at least 1, got %d", c.MaxHeightDiff)
	}
	if c.ObstacleHeightMin < 1 || c.ObstacleHeightMax < c.ObstacleHeightMin {
		return fmt.Errorf("invalid obstacle height range [%d, %d]", c.ObstacleHeightMin, c.ObstacleHeightMax)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"extra_connection_prob", c.ExtraConnectionProb},
		{"obstacle_prob", c.ObstacleProb},
		{"trap_prob_edge", c.TrapProbEdge},
		{"trap_prob_corridor_center", c.TrapProbCorridorCenter},
		{"secret_hint_prob", c.SecretHintProb},
		{"treasure_prob", c.TreasureProb},
		{"boss_room_prob", c.BossRoomProb},
		{"corridor_monster_prob", c.CorridorMonsterProb},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", p.name, p.value)
		}
	}
	if c.MonsterDensity < 0 {
		return fmt.Errorf("monster_density must not be negative, got %g", c.MonsterDensity)
	}
	if c.MaxRepairAttempts < 1 {
		return fmt.Errorf("max_repair_attempts must be at least 1, got %d", c.MaxRepairAttempts)
	}
	if c.MaxGenerationAttempts < 1 {
		return fmt.Errorf("max_generation_attempts must be at least 1, got %d", c.MaxGenerationAttempts)
	}
	return nil
}
