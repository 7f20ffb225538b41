// Package bitmatrix provides the square, row-major bit matrix every relation and
// order in this module is stored in. Coordinate (i, j) lives at serial index i*n+j.
package bitmatrix

import (
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrMalformedMatrix = errors.New("malformed bit matrix")

type Matrix struct {
	order   uint
	bits    *bitset.BitSet
	indexer indexer
}

// New returns an empty order x order matrix
func New(order int) *Matrix {
	if order < 0 {
		log.Panicf("matrix order must be non-negative: %v", order)
	}
	return &Matrix{
		order:   uint(order),
		bits:    bitset.New(uint(order * order)),
		indexer: newIndexer(uint(order)),
	}
}

// FromString parses a row-major string of '0' and '1' whose length is a perfect square
func FromString(bitString string) (*Matrix, error) {
	order := int(math.Sqrt(float64(len(bitString))))
	if order*order != len(bitString) {
		return nil, errors.Wrapf(ErrMalformedMatrix, "length %v is not a perfect square", len(bitString))
	}

	matrix := New(order)
	for i, char := range bitString {
		switch char {
		case '1':
			matrix.bits.Set(uint(i))
		case '0':
		default:
			return nil, errors.Wrapf(ErrMalformedMatrix, "unexpected character %q at position %v", char, i)
		}
	}
	return matrix, nil
}

func (matrix *Matrix) Order() int {
	return int(matrix.order)
}

func (matrix *Matrix) Index(row, column int) int {
	return int(matrix.index(row, column))
}

func (matrix *Matrix) Coordinates(index int) (row, column int) {
	r, c := matrix.indexer.Attributes(uint(index))
	return int(r), int(c)
}

func (matrix *Matrix) Test(row, column int) bool {
	return matrix.bits.Test(matrix.index(row, column))
}

func (matrix *Matrix) Set(row, column int) {
	matrix.bits.Set(matrix.index(row, column))
}

func (matrix *Matrix) Clear(row, column int) {
	matrix.bits.Clear(matrix.index(row, column))
}

// Cardinality returns the number of set bits
func (matrix *Matrix) Cardinality() int {
	return int(matrix.bits.Count())
}

func (matrix *Matrix) Clone() *Matrix {
	return &Matrix{
		order:   matrix.order,
		bits:    matrix.bits.Clone(),
		indexer: matrix.indexer,
	}
}

// Equal compares order and bit content
func (matrix *Matrix) Equal(other *Matrix) bool {
	return matrix.order == other.order && matrix.bits.Equal(other.bits)
}

// IsSubsetOf checks whether every bit set in matrix is also set in other
func (matrix *Matrix) IsSubsetOf(other *Matrix) bool {
	if matrix.order != other.order {
		return false
	}
	return matrix.bits.Intersection(other.bits).Equal(matrix.bits)
}

// Swap exchanges the identities of i and j: rows i and j are swapped first, then columns i and j
func (matrix *Matrix) Swap(i, j int) {
	if i == j {
		return
	}
	order := matrix.Order()
	for k := range order {
		a, b := matrix.Test(i, k), matrix.Test(j, k)
		matrix.setTo(i, k, b)
		matrix.setTo(j, k, a)
	}
	for k := range order {
		a, b := matrix.Test(k, i), matrix.Test(k, j)
		matrix.setTo(k, i, b)
		matrix.setTo(k, j, a)
	}
}

// Each calls visit for every set bit in serial order
func (matrix *Matrix) Each(visit func(row, column int)) {
	for i, ok := matrix.bits.NextSet(0); ok; i, ok = matrix.bits.NextSet(i + 1) {
		row, column := matrix.indexer.Attributes(i)
		visit(int(row), int(column))
	}
}

// SerialIndices returns the serial index of every set bit in ascending order
func (matrix *Matrix) SerialIndices() []int {
	indices := make([]int, 0, matrix.Cardinality())
	for i, ok := matrix.bits.NextSet(0); ok; i, ok = matrix.bits.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return indices
}

// String renders the matrix row-major as '0' and '1' characters. Two matrices of the same order are equal if and only if their strings are
func (matrix *Matrix) String() string {
	var builder strings.Builder
	size := matrix.order * matrix.order
	builder.Grow(int(size))
	for i := range size {
		if matrix.bits.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

func (matrix *Matrix) setTo(row, column int, value bool) {
	if value {
		matrix.Set(row, column)
	} else {
		matrix.Clear(row, column)
	}
}

func (matrix *Matrix) index(row, column int) uint {
	if row < 0 || column < 0 || uint(row) >= matrix.order || uint(column) >= matrix.order {
		log.Panicf("coordinate (%v, %v) is out of range for a matrix of order %v", row, column, matrix.order)
	}
	return matrix.indexer.Index(uint(row), uint(column))
}
