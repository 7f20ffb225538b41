package lattice

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"
)

// NodeAttributes renders the dot attributes of every node. Nodes irreducible in at least one direction get a double border styled bold (irreducible both ways), dotted (join-reducible) or dashed (meet-reducible)
func NodeAttributes(colors []string, joinReducibles, meetReducibles *bitset.BitSet) []string {
	attributes := make([]string, len(colors))
	for i, color := range colors {
		joinReducible := joinReducibles.Test(uint(i))
		meetReducible := meetReducibles.Test(uint(i))

		var style string
		switch {
		case joinReducible && meetReducible:
			attributes[i] = fmt.Sprintf("fillcolor=\"%s\"", color)
			continue
		case joinReducible:
			style = "dotted"
		case meetReducible:
			style = "dashed"
		default:
			style = "bold"
		}
		attributes[i] = fmt.Sprintf("fillcolor=\"%s\"; peripheries=2; style=\"filled,%s\"", color, style)
	}
	return attributes
}

// ColorAttributes renders fill colours only, for orders that are not lattices
func ColorAttributes(colors []string) []string {
	return lo.Map(colors, func(color string, _ int) string { return fmt.Sprintf("fillcolor=\"%s\"", color) })
}
