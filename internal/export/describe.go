package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stonehall/dungeongen/internal/dungeon"
	"github.com/stonehall/dungeongen/internal/grid"
)

// dangerousLevel and dangerousBulk mark the thresholds above which a
// monster is called out individually in the description.
const (
	dangerousLevel = 8
	dangerousBulk  = 60
	maxCallouts    = 5
)

// Describe renders the narrative summary of the dungeon: counts,
// percentages, elevation statistics, the most dangerous monsters, and short
// advisories.
func Describe(res *dungeon.Result) string {
	var sb strings.Builder

	sb.WriteString("=== Dungeon Map Detailed Description ===\n\n")
	fmt.Fprintf(&sb, "This dungeon is a %dx%d underground labyrinth.\n",
		res.Canvas.Width, res.Canvas.Height)
	fmt.Fprintf(&sb, "A total of %d rooms are connected by corridors.\n\n", len(res.Rooms))

	fmt.Fprintf(&sb, "The entrance is at (%d, %d),\n", res.Entrance.X, res.Entrance.Y)
	fmt.Fprintf(&sb, "and the exit is at (%d, %d).\n", res.Exit.X, res.Exit.Y)
	fmt.Fprintf(&sb, "The Manhattan distance between the two points is %d.\n\n",
		grid.Manhattan(res.Entrance, res.Exit))

	sb.WriteString("Room information:\n")
	for _, r := range res.Rooms {
		center := r.Center()
		fmt.Fprintf(&sb, "  Room %d: position(%d, %d), size(%dx%d), area(%d), center(%d, %d)\n",
			r.ID+1, r.X, r.Y, r.W, r.H, r.Area(), center.X, center.Y)
	}
	sb.WriteByte('\n')

	counts, minH, maxH, totalH, floorCells := terrainStats(res)

	sb.WriteString("Feature distribution:\n")
	for _, feat := range grid.AllFeatures() {
		if feat == grid.FeatureNone || counts[feat] == 0 {
			continue
		}
		percentage := float64(counts[feat]) / float64(floorCells) * 100
		fmt.Fprintf(&sb, "  %s: %d cells (%.1f%%)\n", feat, counts[feat], percentage)
	}
	sb.WriteByte('\n')

	sb.WriteString("Terrain elevation:\n")
	fmt.Fprintf(&sb, "  Lowest: %d\n", minH)
	fmt.Fprintf(&sb, "  Highest: %d\n", maxH)
	fmt.Fprintf(&sb, "  Average: %.1f\n\n", float64(totalH)/float64(floorCells))

	describePath(&sb, res)
	describeMonsters(&sb, res.Monsters)
	describeAdvice(&sb, counts, res.Monsters)

	return sb.String()
}

func terrainStats(res *dungeon.Result) (counts map[grid.Feature]int, minH, maxH, totalH, floorCells int) {
	counts = make(map[grid.Feature]int)
	minH = -1
	for y := 0; y < res.Canvas.Height; y++ {
		for x := 0; x < res.Canvas.Width; x++ {
			if !res.Canvas.IsFloor(x, y) {
				continue
			}
			counts[res.Features.Get(x, y)]++
			h := res.Elevation.Get(x, y)
			if minH == -1 || h < minH {
				minH = h
			}
			if h > maxH {
				maxH = h
			}
			totalH += h
			floorCells++
		}
	}
	return counts, minH, maxH, totalH, floorCells
}

func describePath(sb *strings.Builder, res *dungeon.Result) {
	fmt.Fprintf(sb, "The shortest path from entrance to exit is %d steps.\n", len(res.Path))

	pathFeatures := make(map[grid.Feature]int)
	for _, p := range res.Path {
		feat := res.Features.Get(p.X, p.Y)
		switch feat {
		case grid.FeatureNone, grid.FeaturePath, grid.FeatureEntrance, grid.FeatureExit:
		default:
			pathFeatures[feat]++
		}
	}
	if len(pathFeatures) > 0 {
		sb.WriteString("Notable points along the main path:\n")
		for _, feat := range grid.AllFeatures() {
			if pathFeatures[feat] > 0 {
				fmt.Fprintf(sb, "  %s on the path: %d\n", feat, pathFeatures[feat])
			}
		}
	}
	sb.WriteByte('\n')
}

func describeMonsters(sb *strings.Builder, monsters []dungeon.Monster) {
	if len(monsters) == 0 {
		return
	}

	sb.WriteString("Monster distribution:\n")
	byTier := make(map[dungeon.Tier][]dungeon.Monster)
	totalLevel := 0
	maxThreat := 0
	for _, m := range monsters {
		byTier[m.Tier] = append(byTier[m.Tier], m)
		totalLevel += m.Level
		if threat := m.HP + m.Attack; threat > maxThreat {
			maxThreat = threat
		}
	}
	for tier := dungeon.TierWeak; tier <= dungeon.TierBoss; tier++ {
		group := byTier[tier]
		if len(group) == 0 {
			continue
		}
		levelSum := 0
		for _, m := range group {
			levelSum += m.Level
		}
		fmt.Fprintf(sb, "  %s: %d (average level %.1f)\n",
			tier, len(group), float64(levelSum)/float64(len(group)))
	}
	fmt.Fprintf(sb, "  Total monsters: %d\n", len(monsters))
	fmt.Fprintf(sb, "  Average level: %.1f\n", float64(totalLevel)/float64(len(monsters)))
	fmt.Fprintf(sb, "  Highest threat: %d\n\n", maxThreat)

	var dangerous []dungeon.Monster
	for _, m := range monsters {
		if m.Level >= dangerousLevel || m.HP+m.Attack >= dangerousBulk {
			dangerous = append(dangerous, m)
		}
	}
	if len(dangerous) > 0 {
		sort.SliceStable(dangerous, func(i, j int) bool {
			return dangerous[i].Danger() > dangerous[j].Danger()
		})
		if len(dangerous) > maxCallouts {
			dangerous = dangerous[:maxCallouts]
		}
		sb.WriteString("Especially dangerous monsters:\n")
		for _, m := range dangerous {
			fmt.Fprintf(sb, "  %s (Lv.%d) - position(%d, %d)\n",
				m.Name, m.Level, m.Position.X, m.Position.Y)
		}
		sb.WriteByte('\n')
	}
}

func describeAdvice(sb *strings.Builder, counts map[grid.Feature]int, monsters []dungeon.Monster) {
	sb.WriteString("Exploration advice:\n")
	if n := counts[grid.FeatureTrap]; n > 0 {
		fmt.Fprintf(sb, "  - %d traps present; proceed carefully.\n", n)
	}
	if n := counts[grid.FeatureTreasure]; n > 0 {
		fmt.Fprintf(sb, "  - %d treasure locations to find.\n", n)
	}
	if n := counts[grid.FeatureSecretHint]; n > 0 {
		fmt.Fprintf(sb, "  - Look out for %d secret hints.\n", n)
	}
	if len(monsters) > 0 {
		weak, strong := 0, 0
		for _, m := range monsters {
			if m.Level <= 3 {
				weak++
			}
			if m.Level >= 7 {
				strong++
			}
		}
		fmt.Fprintf(sb, "  - %d weak monsters, %d strong monsters.\n", weak, strong)
		if strong > 0 {
			sb.WriteString("  - Avoid the strong monsters or prepare well before engaging.\n")
		}
	}
}
