package group

import (
	"slices"

	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/pkg/errors"
)

// Swap exchanges elements I and J, with I <= J
type Swap struct {
	I, J int
}

// Permutation is an ordered sequence of swaps. Applying every swap in order realizes the permutation
type Permutation []Swap

// PermutationFromTable decomposes a [from, to] table over order elements into swaps. Elements missing from the table are fixed points
func PermutationFromTable(pairs [][2]int, order int) (Permutation, error) {
	mapping := make([]int, order)
	for i := range mapping {
		mapping[i] = i
	}

	//** Build the mapping
	mapped := make([]bool, order)
	for _, pair := range pairs {
		from, to := pair[0], pair[1]
		if from < 0 || from >= order || to < 0 || to >= order {
			return nil, errors.Wrapf(ErrInvalidPermutation, "pair %v is out of range [0, %v)", pair, order)
		}
		if mapped[from] && mapping[from] != to {
			return nil, errors.Wrapf(ErrInvalidPermutation, "element %v is mapped to both %v and %v", from, mapping[from], to)
		}
		mapping[from] = to
		mapped[from] = true
	}

	// The mapping must be a bijection
	images := make([]bool, order)
	for from, to := range mapping {
		if images[to] {
			return nil, errors.Wrapf(ErrInvalidPermutation, "element %v is the image of more than one element (last one %v)", to, from)
		}
		images[to] = true
	}

	//** Walk the cycles
	permutation := make(Permutation, 0)
	visited := make([]bool, order)
	for start := range order {
		if visited[start] {
			continue
		}
		visited[start] = true
		for current := start; mapping[current] != start; current = mapping[current] {
			next := mapping[current]
			permutation = append(permutation, newSwap(current, next))
			visited[next] = true
		}
	}
	slices.Reverse(permutation)
	return permutation, nil
}

// Apply returns a copy of matrix with every swap applied in order. The matrix itself is left untouched
func (permutation Permutation) Apply(matrix *bitmatrix.Matrix) *bitmatrix.Matrix {
	permuted := matrix.Clone()
	for _, swap := range permutation {
		permuted.Swap(swap.I, swap.J)
	}
	return permuted
}

func newSwap(i, j int) Swap {
	return Swap{I: min(i, j), J: max(i, j)}
}
