package lattice

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/samber/lo"
)

type Classifier interface {
	IsFaithful() bool
	IsNormal() bool
}

// NameSelector names the nodes of a collapsed part
type NameSelector func(names []string, part []int) string

// FullPartName joins the names of every member of the part
func FullPartName(names []string, part []int) string {
	return strings.Join(lo.Map(part, func(member int, _ int) string { return names[member] }), ",")
}

// RepresentativeName keeps the name of the first member of the part
func RepresentativeName(names []string, part []int) string {
	return names[part[0]]
}

// IncludeBy marks the nodes to keep when only faithful and/or normal relations are wanted
func IncludeBy[T Classifier](nodes []T, faithfulOnly, normalOnly bool) *bitset.BitSet {
	include := bitset.New(uint(len(nodes)))
	for i, node := range nodes {
		if (!faithfulOnly || node.IsFaithful()) && (!normalOnly || node.IsNormal()) {
			include.Set(uint(i))
		}
	}
	return include
}

// FilterBy keeps the included nodes, their order, names and colours. A part left with a single node joins the first part
func (lattice *Lattice) FilterBy(include *bitset.BitSet) *Lattice {
	kept := lo.Filter(lo.Range(lattice.Size()), func(node int, _ int) bool { return include.Test(uint(node)) })
	positions := make(map[int]int, len(kept))
	for position, node := range kept {
		positions[node] = position
	}

	//** Order, names and colours
	order := bitmatrix.New(len(kept))
	for i, oldI := range kept {
		for j, oldJ := range kept {
			if lattice.Order.Test(oldI, oldJ) {
				order.Set(i, j)
			}
		}
	}
	names := lo.Map(kept, func(node int, _ int) string { return lattice.Names[node] })
	colors := lo.Map(kept, func(node int, _ int) string { return lattice.Colors[node] })

	//** Partition
	singletons := make([]int, 0)
	parts := make([][]int, 0)
	for index, part := range lattice.Partition {
		survivors := lo.FilterMap(part, func(node int, _ int) (int, bool) {
			position, ok := positions[node]
			return position, ok
		})
		if index == 0 || len(survivors) == 1 {
			singletons = append(singletons, survivors...)
		} else if len(survivors) > 1 {
			parts = append(parts, survivors)
		}
	}
	slices.Sort(singletons)

	return &Lattice{
		Order:     order,
		Names:     names,
		Colors:    colors,
		Partition: append([][]int{singletons}, parts...),
	}
}

// CollapseBy renames every node of the clustered parts with the name the selector picks for its part. Nodes sharing a name merge once drawn
func (lattice *Lattice) CollapseBy(selector NameSelector) *Lattice {
	names := slices.Clone(lattice.Names)
	for _, part := range lattice.Partition[1:] {
		name := selector(lattice.Names, part)
		for _, node := range part {
			names[node] = name
		}
	}

	return &Lattice{
		Order:     lattice.Order.Clone(),
		Names:     names,
		Colors:    slices.Clone(lattice.Colors),
		Partition: clonePartition(lattice.Partition),
	}
}
