package relation

import "github.com/limaJavier/quasiorder/pkg/bitmatrix"

// OverallOrder builds the inclusion order over relations sorted by descending cardinality: bit (j, i) is set when relation j is contained in relation i. Relations of equal cardinality are only related to themselves
func OverallOrder(relations []Relation) *bitmatrix.Matrix {
	order := bitmatrix.New(len(relations))
	for i := range relations {
		order.Set(i, i)
		for j := i + 1; j < len(relations); j++ {
			if relations[i].Cardinality == relations[j].Cardinality {
				continue
			}
			if relations[j].Matrix.IsSubsetOf(relations[i].Matrix) {
				order.Set(j, i)
			}
		}
	}
	return order
}
