// Package export renders a generation result into its three external
// artifacts: the ASCII text map, the structured JSON record, and the
// narrative description.
package export

import (
	"fmt"
	"strings"

	"github.com/stonehall/dungeongen/internal/dungeon"
	"github.com/stonehall/dungeongen/internal/grid"
)

// legendLines is the fixed legend block of the text map. The symbols are a
// compatibility contract with downstream consumers; do not reorder or
// change them.
var legendLines = []string{
	"Legend:",
	"  # : wall",
	"  . : floor",
	"  E : entrance",
	"  X : exit",
	"  T : trap",
	"  ? : secret hint",
	"  O : obstacle",
	"  B : bridge",
	"  $ : treasure",
	"  + : path",
	"  m : weak monster",
	"  M : normal monster",
	"  S : strong monster",
	"  B : boss monster",
}

// ASCIIMap renders the dungeon as a legend-prefixed character grid, one
// symbol per cell, exactly Height lines of exactly Width characters after
// the header.
func ASCIIMap(res *dungeon.Result) string {
	var sb strings.Builder

	sb.WriteString("=== Dungeon Map (Text Representation) ===\n")
	fmt.Fprintf(&sb, "Size: %d x %d\n", res.Canvas.Width, res.Canvas.Height)
	fmt.Fprintf(&sb, "Rooms: %d\n", len(res.Rooms))
	sb.WriteByte('\n')
	for _, line := range legendLines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	row := make([]byte, res.Canvas.Width)
	for y := 0; y < res.Canvas.Height; y++ {
		for x := 0; x < res.Canvas.Width; x++ {
			if !res.Canvas.IsFloor(x, y) {
				row[x] = '#'
				continue
			}
			row[x] = res.Features.Get(x, y).Symbol()
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// symbolString returns the one-character display string of a feature.
func symbolString(f grid.Feature) string {
	return string(f.Symbol())
}
