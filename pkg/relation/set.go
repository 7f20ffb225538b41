package relation

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/google/btree"
)

// Set keeps relations unique by content. Every relation remembers the families that generated it, in insertion order
type Set struct {
	keys      map[string]int
	relations []Relation
	families  [][]*bitset.BitSet
}

func NewSet() *Set {
	return &Set{
		keys:      make(map[string]int),
		relations: make([]Relation, 0),
		families:  make([][]*bitset.BitSet, 0),
	}
}

// Add appends the relation unless an equal one is already present, in which case only the family is recorded. It reports whether the relation was new
func (set *Set) Add(relation Relation, family *bitset.BitSet) bool {
	key := relation.Matrix.String()
	if index, ok := set.keys[key]; ok {
		set.families[index] = append(set.families[index], family)
		return false
	}

	set.keys[key] = len(set.relations)
	set.relations = append(set.relations, relation)
	set.families = append(set.families, []*bitset.BitSet{family})
	return true
}

func (set *Set) Len() int {
	return len(set.relations)
}

func (set *Set) Relations() []Relation {
	return set.relations
}

func (set *Set) Families(index int) []*bitset.BitSet {
	return set.families[index]
}

// Sort orders the relations by descending cardinality. Relations of equal cardinality keep their insertion order
func (set *Set) Sort() {
	index := btree.NewG[int](2, func(a, b int) bool {
		if set.relations[a].Cardinality != set.relations[b].Cardinality {
			return set.relations[a].Cardinality > set.relations[b].Cardinality
		}
		return a < b
	})
	for i := range set.relations {
		index.ReplaceOrInsert(i)
	}

	relations := make([]Relation, 0, len(set.relations))
	families := make([][]*bitset.BitSet, 0, len(set.families))
	index.Ascend(func(i int) bool {
		set.keys[set.relations[i].Matrix.String()] = len(relations)
		relations = append(relations, set.relations[i])
		families = append(families, set.families[i])
		return true
	})
	set.relations = relations
	set.families = families
}
