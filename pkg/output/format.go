// Package output renders enumeration results: the raw text report, graphviz dot files and
// the json form of the overall order.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/samber/lo"
)

// WriteFamilies prints the families generating relation index, one per line, each subgroup in braces
func WriteFamilies(writer io.Writer, g *group.Group, families []*bitset.BitSet, index int) {
	fmt.Fprintf(writer, "\n%d>>>\n", index)
	for _, family := range families {
		for _, subgroup := range bitmatrix.Members(family) {
			fmt.Fprintf(writer, "{%s} ", g.SubgroupNames[subgroup])
		}
		fmt.Fprintln(writer)
	}
	fmt.Fprintln(writer)
}

// WriteRelation prints a relation as a table with an x wherever row <= column
func WriteRelation(writer io.Writer, relation *bitmatrix.Matrix, names []string, index int) {
	fmt.Fprintf(writer, "\n%d>>>\n", index)
	for i := range relation.Order() {
		fmt.Fprintf(writer, "%-20s \t:", names[i])
		for j := range relation.Order() {
			if relation.Test(i, j) {
				fmt.Fprint(writer, "x ")
			} else {
				fmt.Fprint(writer, "  ")
			}
		}
		fmt.Fprintln(writer)
	}
	fmt.Fprintln(writer)
}

// Dot renders an order as a strict graphviz digraph with an edge from column to row for every set bit. Every part of the partition but the first becomes a grey cluster
func Dot(order *bitmatrix.Matrix, names, attributes []string, partition [][]int) string {
	var builder strings.Builder
	builder.WriteString("strict digraph {\nedge [ arrowhead=\"none\", arrowtail=\"none\"]\n")

	for i := range order.Order() {
		fmt.Fprintf(&builder, "%q [%s]\n", names[i], attributes[i])
	}

	if len(partition) > 1 {
		for k, part := range partition[1:] {
			members := lo.Map(part, func(member int, _ int) string { return fmt.Sprintf("%q", names[member]) })
			fmt.Fprintf(&builder, "subgraph cluster_%d { %s; style=filled; color=lightgrey }\n", k, strings.Join(members, " "))
		}
	}

	order.Each(func(row, column int) {
		fmt.Fprintf(&builder, "%q->%q\n", names[column], names[row])
	})

	builder.WriteString("}\n")
	return builder.String()
}

// IndexNames names the nodes of an order of the given size "0", "1", ...
func IndexNames(size int) []string {
	return lo.Map(lo.Range(size), func(i int, _ int) string { return fmt.Sprint(i) })
}
