// Package lattice analyses finite partial orders given as bit matrices whose index 0 is the top element: join and meet tables, lattice laws, reducible elements and the filtered or collapsed views drawn from them
package lattice

import (
	"slices"

	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNoJoin = errors.New("elements have no join")
	ErrNoMeet = errors.New("elements have no meet")
)

// Lattice is an order over named, coloured nodes. Bit (j, i) means node j <= node i. The first part of the partition gathers the nodes that belong to no cluster
type Lattice struct {
	Order     *bitmatrix.Matrix
	Names     []string
	Colors    []string
	Partition [][]int
}

// New builds a lattice over order. An empty partition puts every node in the first part
func New(order *bitmatrix.Matrix, names, colors []string, partition [][]int) *Lattice {
	if len(names) != order.Order() || len(colors) != order.Order() {
		log.Panicf("lattice of order %v needs as many names and colors: %v names and %v colors were given", order.Order(), len(names), len(colors))
	}

	if len(partition) == 0 {
		singletons := make([]int, order.Order())
		for i := range singletons {
			singletons[i] = i
		}
		partition = [][]int{singletons}
	}

	return &Lattice{
		Order:     order,
		Names:     slices.Clone(names),
		Colors:    slices.Clone(colors),
		Partition: clonePartition(partition),
	}
}

func (lattice *Lattice) Size() int {
	return lattice.Order.Order()
}

func clonePartition(partition [][]int) [][]int {
	cloned := make([][]int, len(partition))
	for i, part := range partition {
		cloned[i] = slices.Clone(part)
		if cloned[i] == nil {
			cloned[i] = []int{}
		}
	}
	return cloned
}
