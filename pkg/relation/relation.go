// Package relation builds the fix-order quasi-orders a group induces through its subgroup families, keeps the unique ones and orders them
package relation

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/limaJavier/quasiorder/pkg/group"
)

const (
	ColorFaithfulNormal = "chartreuse1"
	ColorFaithful       = "yellow"
	ColorNormal         = "cadetblue1"
	ColorNeither        = "gray"
)

// Relation is a fix-order quasi-order over the group elements: bit (i, j) means element i <= element j
type Relation struct {
	Matrix      *bitmatrix.Matrix
	Cardinality int
	Faithful    bool
	Normal      bool
	Color       string
}

func NewRelation(matrix *bitmatrix.Matrix, normal bool) Relation {
	faithful := IsFaithful(matrix)
	return Relation{
		Matrix:      matrix,
		Cardinality: matrix.Cardinality(),
		Faithful:    faithful,
		Normal:      normal,
		Color:       ColorOf(faithful, normal),
	}
}

// FamilyRelation builds the relation of a family and tags it from the family itself: faithful when the family shares only the identity, normal when every subgroup is normal
func FamilyRelation(g *group.Group, family *bitset.BitSet) Relation {
	matrix := BuildRelation(g, family)
	faithful := group.IsIntersectionTrivial(g.ElementMasks, family)
	normal := IsNormal(family, g.Normal)
	return Relation{
		Matrix:      matrix,
		Cardinality: matrix.Cardinality(),
		Faithful:    faithful,
		Normal:      normal,
		Color:       ColorOf(faithful, normal),
	}
}

func (relation Relation) IsFaithful() bool {
	return relation.Faithful
}

func (relation Relation) IsNormal() bool {
	return relation.Normal
}

// BuildRelation computes the quasi-order where element a <= element b if and only if every family subgroup containing a also contains b
func BuildRelation(g *group.Group, family *bitset.BitSet) *bitmatrix.Matrix {
	numElements := g.NumElements()
	relation := bitmatrix.New(numElements)

	for i := range numElements {
		relation.Set(i, i)
		for j := i + 1; j < numElements; j++ {
			if IsRelated(g.ElementMasks[i], g.ElementMasks[j], family) {
				relation.Set(i, j)
			}
			if IsRelated(g.ElementMasks[j], g.ElementMasks[i], family) {
				relation.Set(j, i)
			}
		}
	}
	return relation
}

// IsRelated reports whether every family subgroup containing the first element also contains the second one
func IsRelated(first, second, family *bitset.BitSet) bool {
	return first.Intersection(family).Difference(second).None()
}

// IsFaithful reports whether the identity (element 0) is below no other element
func IsFaithful(relation *bitmatrix.Matrix) bool {
	for column := 1; column < relation.Order(); column++ {
		if relation.Test(0, column) {
			return false
		}
	}
	return true
}

// IsNormal reports whether every subgroup of the family is normal
func IsNormal(family, normal *bitset.BitSet) bool {
	return normal.IsSuperSet(family)
}

func ColorOf(faithful, normal bool) string {
	switch {
	case faithful && normal:
		return ColorFaithfulNormal
	case faithful:
		return ColorFaithful
	case normal:
		return ColorNormal
	default:
		return ColorNeither
	}
}
