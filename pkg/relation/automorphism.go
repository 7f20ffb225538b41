package relation

import (
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/limaJavier/quasiorder/pkg/group"
	"github.com/samber/lo"
)

// IsAutomorphismEquivalent reports whether one of the permutations maps a onto b
func IsAutomorphismEquivalent(a, b *bitmatrix.Matrix, permutations []group.Permutation) bool {
	return lo.SomeBy(permutations, func(permutation group.Permutation) bool {
		return permutation.Apply(a).Equal(b)
	})
}

// PartitionBy groups relations of equal cardinality that a chain of automorphisms maps onto each other, so the permutations may be mere generators. The first part gathers every relation left alone and may be empty
func PartitionBy(relations []Relation, permutations []group.Permutation) [][]int {
	// Union-find where every root is the smallest member of its part
	parents := lo.Range(len(relations))
	var find func(i int) int
	find = func(i int) int {
		if parents[i] != i {
			parents[i] = find(parents[i])
		}
		return parents[i]
	}

	for i := range relations {
		for j := i + 1; j < len(relations); j++ {
			if relations[j].Cardinality != relations[i].Cardinality {
				continue
			}
			rootI, rootJ := find(i), find(j)
			if rootI == rootJ {
				continue
			}
			if IsAutomorphismEquivalent(relations[i].Matrix, relations[j].Matrix, permutations) ||
				IsAutomorphismEquivalent(relations[j].Matrix, relations[i].Matrix, permutations) {
				parents[max(rootI, rootJ)] = min(rootI, rootJ)
			}
		}
	}

	//** Parts ordered by their smallest member
	members := make(map[int][]int)
	roots := make([]int, 0)
	for i := range relations {
		root := find(i)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], i)
	}

	singletons := make([]int, 0)
	parts := make([][]int, 0)
	for _, root := range roots {
		if part := members[root]; len(part) == 1 {
			singletons = append(singletons, part[0])
		} else {
			parts = append(parts, part)
		}
	}
	return append([][]int{singletons}, parts...)
}
