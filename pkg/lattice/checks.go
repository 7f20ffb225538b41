package lattice

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
)

// NoWitness fills the witness of a check that holds
const NoWitness = -1

type LatticeWitness struct {
	I, J, K, M int
}

// LatticeCheck tells whether every pair of unrelated elements has a unique meet and join. The witness names the pair (I, J), the candidate K and the element M that breaks it
type LatticeCheck struct {
	Holds   bool
	Witness LatticeWitness
}

type ModularWitness struct {
	X, A, B, XJoinA, AMeetB int
}

type ModularCheck struct {
	Holds   bool
	Witness ModularWitness
}

type DistributiveWitness struct {
	X, Y, Z, YMeetZ, XJoinY, XJoinZ int
}

type DistributiveCheck struct {
	Holds   bool
	Witness DistributiveWitness
}

type DiamondWitness struct {
	X, Y, Z, Join, Meet int
}

// DiamondCheck reports the first triple of distinct elements sharing every pairwise join and meet (an M3 or M5 sublattice)
type DiamondCheck struct {
	Found   bool
	Witness DiamondWitness
}

type SemidistributiveWitness struct {
	X, Y, Z, Meet, YJoinZ, Violating int
}

type SemidistributiveCheck struct {
	Holds   bool
	Witness SemidistributiveWitness
}

// IsALattice checks the order for unique meets first and unique joins second
func IsALattice(order *bitmatrix.Matrix) LatticeCheck {
	size := order.Order()

	//** Meets
	for i := range size {
		for j := i + 1; j < size; j++ {
			if order.Test(i, j) {
				continue
			}
			k, ok := findMeet(order, i, j)
			if !ok {
				return LatticeCheck{Witness: LatticeWitness{i, j, NoWitness, NoWitness}}
			}
			for m := k; m < size; m++ {
				if order.Test(m, i) && order.Test(m, j) && !order.Test(m, k) {
					return LatticeCheck{Witness: LatticeWitness{i, j, k, m}}
				}
			}
		}
	}

	//** Joins
	for i := range size {
		for j := i + 1; j < size; j++ {
			if order.Test(i, j) {
				continue
			}
			k, ok := findJoin(order, i, j)
			if !ok {
				return LatticeCheck{Witness: LatticeWitness{i, j, NoWitness, NoWitness}}
			}
			for m := k; m >= 0; m-- {
				if order.Test(i, m) && order.Test(j, m) && !order.Test(k, m) {
					return LatticeCheck{Witness: LatticeWitness{i, j, k, m}}
				}
			}
		}
	}

	return LatticeCheck{Holds: true, Witness: LatticeWitness{NoWitness, NoWitness, NoWitness, NoWitness}}
}

// IsModular checks x <= b => x v (a ^ b) == (x v a) ^ b over every related pair (x, b) and every a
func (engine *Engine) IsModular() ModularCheck {
	size := engine.Size()
	result := ModularCheck{Holds: true, Witness: ModularWitness{NoWitness, NoWitness, NoWitness, NoWitness, NoWitness}}

	engine.order.Each(func(x, b int) {
		if !result.Holds {
			return
		}
		for a := range size {
			xJoinA := engine.join[x][a]
			aMeetB := engine.meet[a][b]
			if engine.join[x][aMeetB] != engine.meet[xJoinA][b] {
				result = ModularCheck{Witness: ModularWitness{x, a, b, xJoinA, aMeetB}}
				return
			}
		}
	})
	return result
}

// IsDistributive checks x v (y ^ z) == (x v y) ^ (x v z) over every triple
func (engine *Engine) IsDistributive() DistributiveCheck {
	size := engine.Size()
	for x := range size {
		for y := range size {
			for z := range size {
				yMeetZ := engine.meet[y][z]
				xJoinY := engine.join[x][y]
				xJoinZ := engine.join[x][z]
				if engine.join[x][yMeetZ] != engine.meet[xJoinY][xJoinZ] {
					return DistributiveCheck{Witness: DistributiveWitness{x, y, z, yMeetZ, xJoinY, xJoinZ}}
				}
			}
		}
	}
	return DistributiveCheck{Holds: true, Witness: DistributiveWitness{NoWitness, NoWitness, NoWitness, NoWitness, NoWitness, NoWitness}}
}

func (engine *Engine) FindDiamond() DiamondCheck {
	size := engine.Size()
	for x := range size {
		for y := x + 1; y < size; y++ {
			join, meet := engine.join[x][y], engine.meet[x][y]
			for z := y + 1; z < size; z++ {
				if engine.join[x][z] == join && engine.join[y][z] == join &&
					engine.meet[x][z] == meet && engine.meet[y][z] == meet {
					return DiamondCheck{Found: true, Witness: DiamondWitness{x, y, z, join, meet}}
				}
			}
		}
	}
	return DiamondCheck{Witness: DiamondWitness{NoWitness, NoWitness, NoWitness, NoWitness, NoWitness}}
}

// IsMeetSemidistributive checks x ^ y == x ^ z => x ^ (y v z) == x ^ y over every triple
func (engine *Engine) IsMeetSemidistributive() SemidistributiveCheck {
	size := engine.Size()
	for x := range size {
		for y := range size {
			for z := range size {
				meet := engine.meet[x][y]
				if engine.meet[x][z] != meet {
					continue
				}
				yJoinZ := engine.join[y][z]
				if violating := engine.meet[x][yJoinZ]; violating != meet {
					return SemidistributiveCheck{Witness: SemidistributiveWitness{x, y, z, meet, yJoinZ, violating}}
				}
			}
		}
	}
	return SemidistributiveCheck{Holds: true, Witness: SemidistributiveWitness{NoWitness, NoWitness, NoWitness, NoWitness, NoWitness, NoWitness}}
}

// JoinReducibles marks every element that is the join of two other elements
func (engine *Engine) JoinReducibles() *bitset.BitSet {
	return reducibles(engine.join)
}

// MeetReducibles marks every element that is the meet of two other elements
func (engine *Engine) MeetReducibles() *bitset.BitSet {
	return reducibles(engine.meet)
}

func reducibles(table [][]int) *bitset.BitSet {
	result := bitset.New(uint(len(table)))
	for i := range table {
		for j := i + 1; j < len(table); j++ {
			if k := table[i][j]; k != i && k != j {
				result.Set(uint(k))
			}
		}
	}
	return result
}
