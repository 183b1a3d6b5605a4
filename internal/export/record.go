package export

import (
	"encoding/json"
	"fmt"

	"github.com/stonehall/dungeongen/internal/dungeon"
	"github.com/stonehall/dungeongen/internal/grid"
)

// Record is the structured representation of a generation result. The field
// layout is a wire contract with the session layer consuming the JSON file.
type Record struct {
	Metadata Metadata        `json:"metadata"`
	Entrance Endpoint        `json:"entrance"`
	Exit     Endpoint        `json:"exit"`
	Rooms    []RoomRecord    `json:"rooms"`
	Features []FeatureRecord `json:"features"`
	Terrain  []TerrainRecord `json:"terrain"`
	Path     [][]int         `json:"path"`
	Monsters []MonsterRecord `json:"monsters"`
}

// Metadata summarizes the canvas and the validated path.
type Metadata struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	RoomCount  int `json:"room_count"`
	PathLength int `json:"path_length"`
}

// Endpoint is the entrance or exit cell.
type Endpoint struct {
	Coordinates []int  `json:"coordinates"`
	Description string `json:"description"`
}

// RoomRecord is one room's geometry.
type RoomRecord struct {
	ID          int    `json:"id"`
	Coordinates []int  `json:"coordinates"`
	Size        []int  `json:"size"`
	Center      []int  `json:"center"`
	Area        int    `json:"area"`
	Description string `json:"description"`
}

// FeatureRecord lists every cell carrying one feature tag.
type FeatureRecord struct {
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	Locations   [][]int `json:"locations"`
	Description string  `json:"description"`
}

// TerrainRecord is one floor cell with its height and tag.
type TerrainRecord struct {
	Coordinates []int  `json:"coordinates"`
	Height      int    `json:"height"`
	Feature     string `json:"feature"`
	Passable    bool   `json:"passable"`
}

// MonsterRecord is one spawned monster.
type MonsterRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Level       int    `json:"level"`
	HP          int    `json:"hp"`
	Attack      int    `json:"attack"`
	Position    []int  `json:"position"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// BuildRecord assembles the structured record from a generation result.
func BuildRecord(res *dungeon.Result) *Record {
	rec := &Record{
		Metadata: Metadata{
			Width:      res.Canvas.Width,
			Height:     res.Canvas.Height,
			RoomCount:  len(res.Rooms),
			PathLength: len(res.Path),
		},
		Entrance: Endpoint{
			Coordinates: coords(res.Entrance),
			Description: "Dungeon entrance",
		},
		Exit: Endpoint{
			Coordinates: coords(res.Exit),
			Description: "Dungeon exit",
		},
		Path: [][]int{},
	}

	for _, r := range res.Rooms {
		center := r.Center()
		rec.Rooms = append(rec.Rooms, RoomRecord{
			ID:          r.ID,
			Coordinates: []int{r.X, r.Y},
			Size:        []int{r.W, r.H},
			Center:      []int{center.X, center.Y},
			Area:        r.Area(),
			Description: fmt.Sprintf("Room #%d (%dx%d)", r.ID+1, r.W, r.H),
		})
	}

	// Group feature locations in first-appearance scan order so the output
	// is stable for a given result.
	locations := make(map[grid.Feature][][]int)
	var order []grid.Feature
	for y := 0; y < res.Canvas.Height; y++ {
		for x := 0; x < res.Canvas.Width; x++ {
			if !res.Canvas.IsFloor(x, y) {
				continue
			}
			feat := res.Features.Get(x, y)
			rec.Terrain = append(rec.Terrain, TerrainRecord{
				Coordinates: []int{x, y},
				Height:      res.Elevation.Get(x, y),
				Feature:     feat.String(),
				Passable:    true,
			})
			if feat == grid.FeatureNone {
				continue
			}
			if _, seen := locations[feat]; !seen {
				order = append(order, feat)
			}
			locations[feat] = append(locations[feat], []int{x, y})
		}
	}
	for _, feat := range order {
		rec.Features = append(rec.Features, FeatureRecord{
			Type:        feat.String(),
			Count:       len(locations[feat]),
			Locations:   locations[feat],
			Description: feat.Description(),
		})
	}

	for _, p := range res.Path {
		rec.Path = append(rec.Path, coords(p))
	}

	for _, m := range res.Monsters {
		rec.Monsters = append(rec.Monsters, MonsterRecord{
			Name:        m.Name,
			Type:        m.Tier.String(),
			Level:       m.Level,
			HP:          m.HP,
			Attack:      m.Attack,
			Position:    coords(m.Position),
			Symbol:      symbolString(m.Tier.Feature()),
			Description: m.Tier.Feature().Description(),
		})
	}

	return rec
}

// EncodeRecord marshals the structured record as indented JSON.
func EncodeRecord(res *dungeon.Result) ([]byte, error) {
	return json.MarshalIndent(BuildRecord(res), "", "  ")
}

func coords(p grid.Point) []int {
	return []int{p.X, p.Y}
}
