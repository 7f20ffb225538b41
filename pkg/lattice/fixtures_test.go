package lattice

import (
	"fmt"
	"testing"

	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/stretchr/testify/require"
)

type latticeCase struct {
	title            string
	order            string
	join             [][]int
	meet             [][]int
	modular          *ModularWitness          // nil when modular
	distributive     *DistributiveWitness     // nil when distributive
	diamond          *DiamondWitness          // nil when there is none
	semidistributive *SemidistributiveWitness // nil when meet-semidistributive
	joinReducibles   []int
	meetReducibles   []int
	styles           []string // Node styles; "both" marks nodes reducible both ways
	modDistMessage   string
}

func pad50(s string) string {
	return fmt.Sprintf("%-50s", s)
}

func (c latticeCase) matrix(t *testing.T) *bitmatrix.Matrix {
	t.Helper()
	matrix, err := bitmatrix.FromString(c.order)
	require.NoError(t, err)
	return matrix
}

func (c latticeCase) names() []string {
	names := make([]string, len(c.join))
	for i := range names {
		names[i] = fmt.Sprint(i)
	}
	return names
}

func (c latticeCase) colors() []string {
	colors := make([]string, len(c.join))
	for i := range colors {
		colors[i] = fmt.Sprintf("c-%d", i)
	}
	return colors
}

func (c latticeCase) nodeAttributes() []string {
	attributes := make([]string, len(c.styles))
	for i, style := range c.styles {
		if style == "both" {
			attributes[i] = fmt.Sprintf("fillcolor=\"c-%d\"", i)
		} else {
			attributes[i] = fmt.Sprintf("fillcolor=\"c-%d\"; peripheries=2; style=\"filled,%s\"", i, style)
		}
	}
	return attributes
}

var latticeCases = []latticeCase{
	{
		title: "N5",
		order: "10000" + "11000" + "10100" + "11010" + "11111",
		join: [][]int{
			{0, 0, 0, 0, 0},
			{0, 1, 0, 1, 1},
			{0, 0, 2, 0, 2},
			{0, 1, 0, 3, 3},
			{0, 1, 2, 3, 4},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4},
			{1, 1, 4, 3, 4},
			{2, 4, 2, 4, 4},
			{3, 3, 4, 3, 4},
			{4, 4, 4, 4, 4},
		},
		modular: &ModularWitness{3, 2, 1, 0, 4},
		distributive: &DistributiveWitness{3, 1, 2, 4, 1, 0},
		joinReducibles: []int{0},
		meetReducibles: []int{4},
		styles: []string{"dotted", "bold", "bold", "bold", "dashed"},
		modDistMessage: "Modular: false\tDistributive: false" +
			pad50("\t\tNot-modular: {3, 2, 1, 0, 4}") +
			pad50("\t\tNot-distributive: {3, 1, 2, 1, 0, 4}"),
	},
	{
		title: "M3",
		order: "10000" + "11000" + "10100" + "10010" + "11111",
		join: [][]int{
			{0, 0, 0, 0, 0},
			{0, 1, 0, 0, 1},
			{0, 0, 2, 0, 2},
			{0, 0, 0, 3, 3},
			{0, 1, 2, 3, 4},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4},
			{1, 1, 4, 4, 4},
			{2, 4, 2, 4, 4},
			{3, 4, 4, 3, 4},
			{4, 4, 4, 4, 4},
		},
		distributive: &DistributiveWitness{1, 2, 3, 4, 0, 0},
		diamond: &DiamondWitness{1, 2, 3, 0, 4},
		semidistributive: &SemidistributiveWitness{1, 2, 3, 4, 0, 1},
		joinReducibles: []int{0},
		meetReducibles: []int{4},
		styles: []string{"dotted", "bold", "bold", "bold", "dashed"},
		modDistMessage: "Modular: true\tDistributive: false" +
			pad50("\t\tNot-distributive: {1, 2, 3, 0, 0, 4}"),
	},
	{
		title: "M3 super set",
		order: "1000000" + "1100000" + "1010000" + "1111000" + "1010100" + "1010010" + "1111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 1, 0, 0, 1},
			{0, 0, 2, 2, 2, 2, 2},
			{0, 1, 2, 3, 2, 2, 3},
			{0, 0, 2, 2, 4, 2, 4},
			{0, 0, 2, 2, 2, 5, 5},
			{0, 1, 2, 3, 4, 5, 6},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5, 6},
			{1, 1, 3, 3, 6, 6, 6},
			{2, 3, 2, 3, 4, 5, 6},
			{3, 3, 3, 3, 6, 6, 6},
			{4, 6, 4, 6, 4, 6, 6},
			{5, 6, 5, 6, 6, 5, 6},
			{6, 6, 6, 6, 6, 6, 6},
		},
		distributive: &DistributiveWitness{1, 4, 5, 6, 0, 0},
		diamond: &DiamondWitness{3, 4, 5, 2, 6},
		semidistributive: &SemidistributiveWitness{1, 4, 5, 6, 2, 3},
		joinReducibles: []int{0, 2},
		meetReducibles: []int{3, 6},
		styles: []string{"dotted", "bold", "dotted", "dashed", "bold", "bold", "dashed"},
		modDistMessage: "Modular: true\tDistributive: false" +
			pad50("\t\tNot-distributive: {1, 4, 5, 0, 0, 6}"),
	},
	{
		title: "N5 super set",
		order: "100000000" + "110000000" + "101000000" + "110100000" + "111010000" + "110101000" + "111111100" + "111010010" + "111111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 1, 1, 1, 1, 1, 1},
			{0, 0, 2, 0, 2, 0, 2, 2, 2},
			{0, 1, 0, 3, 1, 3, 3, 1, 3},
			{0, 1, 2, 1, 4, 1, 4, 4, 4},
			{0, 1, 0, 3, 1, 5, 5, 1, 5},
			{0, 1, 2, 3, 4, 5, 6, 4, 6},
			{0, 1, 2, 1, 4, 1, 4, 7, 7},
			{0, 1, 2, 3, 4, 5, 6, 7, 8},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5, 6, 7, 8},
			{1, 1, 4, 3, 4, 5, 6, 7, 8},
			{2, 4, 2, 6, 4, 6, 6, 7, 8},
			{3, 3, 6, 3, 6, 5, 6, 8, 8},
			{4, 4, 4, 6, 4, 6, 6, 7, 8},
			{5, 5, 6, 5, 6, 5, 6, 8, 8},
			{6, 6, 6, 6, 6, 6, 6, 8, 8},
			{7, 7, 7, 8, 7, 8, 8, 7, 8},
			{8, 8, 8, 8, 8, 8, 8, 8, 8},
		},
		modular: &ModularWitness{5, 2, 3, 0, 6},
		distributive: &DistributiveWitness{5, 2, 3, 6, 0, 3},
		joinReducibles: []int{0, 1, 4},
		meetReducibles: []int{4, 6, 8},
		styles: []string{"dotted", "dotted", "bold", "bold", "both", "bold", "dashed", "bold", "dashed"},
		modDistMessage: "Modular: false\tDistributive: false" +
			pad50("\t\tNot-modular: {5, 2, 3, 0, 6}") +
			pad50("\t\tNot-distributive: {5, 2, 3, 0, 3, 6}"),
	},
	{
		title: "Dihedral 6",
		order: "100000" + "110000" + "101000" + "111100" + "110010" + "111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0},
			{0, 1, 0, 1, 1, 1},
			{0, 0, 2, 2, 0, 2},
			{0, 1, 2, 3, 1, 3},
			{0, 1, 0, 1, 4, 4},
			{0, 1, 2, 3, 4, 5},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5},
			{1, 1, 3, 3, 4, 5},
			{2, 3, 2, 3, 5, 5},
			{3, 3, 3, 3, 5, 5},
			{4, 4, 5, 5, 4, 5},
			{5, 5, 5, 5, 5, 5},
		},
		joinReducibles: []int{0, 1},
		meetReducibles: []int{3, 5},
		styles: []string{"dotted", "dotted", "bold", "dashed", "bold", "dashed"},
		modDistMessage: "Modular: true\tDistributive: true",
	},
	{
		title: "Figure 8",
		order: "1000000" + "1100000" + "1010000" + "1111000" + "1111100" + "1111010" + "1111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 1, 1, 1, 1},
			{0, 0, 2, 2, 2, 2, 2},
			{0, 1, 2, 3, 3, 3, 3},
			{0, 1, 2, 3, 4, 3, 4},
			{0, 1, 2, 3, 3, 5, 5},
			{0, 1, 2, 3, 4, 5, 6},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5, 6},
			{1, 1, 3, 3, 4, 5, 6},
			{2, 3, 2, 3, 4, 5, 6},
			{3, 3, 3, 3, 4, 5, 6},
			{4, 4, 4, 4, 4, 6, 6},
			{5, 5, 5, 5, 6, 5, 6},
			{6, 6, 6, 6, 6, 6, 6},
		},
		joinReducibles: []int{0, 3},
		meetReducibles: []int{3, 6},
		styles: []string{"dotted", "bold", "bold", "both", "bold", "bold", "dashed"},
		modDistMessage: "Modular: true\tDistributive: true",
	},
	{
		title: "Grid",
		order: "100000000" + "110000000" + "101000000" + "110100000" + "111010000" + "101001000" + "111110100" + "111011010" + "111111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 1, 1, 0, 1, 1, 1},
			{0, 0, 2, 0, 2, 2, 2, 2, 2},
			{0, 1, 0, 3, 1, 0, 3, 1, 3},
			{0, 1, 2, 1, 4, 2, 4, 4, 4},
			{0, 0, 2, 0, 2, 5, 2, 5, 5},
			{0, 1, 2, 3, 4, 2, 6, 4, 6},
			{0, 1, 2, 1, 4, 5, 4, 7, 7},
			{0, 1, 2, 3, 4, 5, 6, 7, 8},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5, 6, 7, 8},
			{1, 1, 4, 3, 4, 7, 6, 7, 8},
			{2, 4, 2, 6, 4, 5, 6, 7, 8},
			{3, 3, 6, 3, 6, 8, 6, 8, 8},
			{4, 4, 4, 6, 4, 7, 6, 7, 8},
			{5, 7, 5, 8, 7, 5, 8, 7, 8},
			{6, 6, 6, 6, 6, 8, 6, 8, 8},
			{7, 7, 7, 8, 7, 7, 8, 7, 8},
			{8, 8, 8, 8, 8, 8, 8, 8, 8},
		},
		joinReducibles: []int{0, 1, 2, 4},
		meetReducibles: []int{4, 6, 7, 8},
		styles: []string{"dotted", "dotted", "dotted", "bold", "both", "bold", "dashed", "dashed", "dashed"},
		modDistMessage: "Modular: true\tDistributive: true",
	},
	{
		title: "Dihedral 4 faithful",
		order: "10000000" + "11000000" + "10100000" + "10010000" + "11101000" + "11010100" + "10110010" + "11111111",
		join: [][]int{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 1, 1, 0, 1},
			{0, 0, 2, 0, 2, 0, 2, 2},
			{0, 0, 0, 3, 0, 3, 3, 3},
			{0, 1, 2, 0, 4, 1, 2, 4},
			{0, 1, 0, 3, 1, 5, 3, 5},
			{0, 0, 2, 3, 2, 3, 6, 6},
			{0, 1, 2, 3, 4, 5, 6, 7},
		},
		meet: [][]int{
			{0, 1, 2, 3, 4, 5, 6, 7},
			{1, 1, 4, 5, 4, 5, 7, 7},
			{2, 4, 2, 6, 4, 7, 6, 7},
			{3, 5, 6, 3, 7, 5, 6, 7},
			{4, 4, 4, 7, 4, 7, 7, 7},
			{5, 5, 7, 5, 7, 5, 7, 7},
			{6, 7, 6, 6, 7, 7, 6, 7},
			{7, 7, 7, 7, 7, 7, 7, 7},
		},
		joinReducibles: []int{0, 1, 2, 3},
		meetReducibles: []int{4, 5, 6, 7},
		styles: []string{"dotted", "dotted", "dotted", "dotted", "dashed", "dashed", "dashed", "dashed"},
		modDistMessage: "Modular: true\tDistributive: true",
	},
}
