package bitmatrix

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// VectorFromString builds a bit vector where bit i is set if and only if bitString[i] == '1'
func VectorFromString(bitString string) *bitset.BitSet {
	vector := bitset.New(uint(len(bitString)))
	for i := range len(bitString) {
		if bitString[i] == '1' {
			vector.Set(uint(i))
		}
	}
	return vector
}

// VectorFromMask builds a vector of the given length from the low bits of mask
func VectorFromMask(mask uint64, length int) *bitset.BitSet {
	vector := bitset.New(uint(length))
	for i := 0; i < length && i < 64; i++ {
		if mask&(1<<i) != 0 {
			vector.Set(uint(i))
		}
	}
	return vector
}

func VectorString(vector *bitset.BitSet, length int) string {
	var builder strings.Builder
	for i := range length {
		if vector.Test(uint(i)) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// Members lists the indices of the set bits in ascending order
func Members(vector *bitset.BitSet) []int {
	members := make([]int, 0, vector.Count())
	for i, ok := vector.NextSet(0); ok; i, ok = vector.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}
