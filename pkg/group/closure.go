package group

import (
	"github.com/bits-and-blooms/bitset"
)

// FamilyFromClasses unions the subgroups of every conjugacy class selected by classMask
func FamilyFromClasses(classes []*bitset.BitSet, numSubgroups int, classMask uint64) *bitset.BitSet {
	family := bitset.New(uint(numSubgroups))
	for i, class := range classes {
		if i < 64 && classMask&(1<<i) != 0 {
			family.InPlaceUnion(class)
		}
	}
	return family
}

// IsIntersectionTrivial reports whether the identity is the only element shared by every subgroup of the family
func IsIntersectionTrivial(elementMasks []*bitset.BitSet, family *bitset.BitSet) bool {
	for element := 1; element < len(elementMasks); element++ {
		if elementMasks[element].IsSuperSet(family) {
			return false
		}
	}
	return true
}

func IsIntersectionClosed(intersections [][]int, family *bitset.BitSet) bool {
	return isClosedUnder(intersections, family)
}

// IsUnionClosed treats a pair whose union is not a subgroup as a violation
func IsUnionClosed(unions [][]int, family *bitset.BitSet) bool {
	return isClosedUnder(unions, family)
}

func isClosedUnder(table [][]int, family *bitset.BitSet) bool {
	for i, ok := family.NextSet(0); ok; i, ok = family.NextSet(i + 1) {
		for j, ok := family.NextSet(i + 1); ok; j, ok = family.NextSet(j + 1) {
			combined := table[i][j]
			if combined == NoSubgroup || !family.Test(uint(combined)) {
				return false
			}
		}
	}
	return true
}
