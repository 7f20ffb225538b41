package lattice

import (
	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/pkg/errors"
)

// Engine holds the join and meet tables of a lattice. Joins are searched from the smaller index towards the top (index 0), meets from the larger index towards the bottom
type Engine struct {
	order *bitmatrix.Matrix
	join  [][]int
	meet  [][]int
}

func NewEngine(order *bitmatrix.Matrix) (*Engine, error) {
	join, err := operationTable(order, findJoin)
	if err != nil {
		return nil, errors.Wrap(ErrNoJoin, err.Error())
	}
	meet, err := operationTable(order, findMeet)
	if err != nil {
		return nil, errors.Wrap(ErrNoMeet, err.Error())
	}

	return &Engine{
		order: order,
		join:  join,
		meet:  meet,
	}, nil
}

func (engine *Engine) Size() int {
	return engine.order.Order()
}

func (engine *Engine) Join(i, j int) int {
	return engine.join[i][j]
}

func (engine *Engine) Meet(i, j int) int {
	return engine.meet[i][j]
}

func (engine *Engine) JoinTable() [][]int {
	return cloneTable(engine.join)
}

func (engine *Engine) MeetTable() [][]int {
	return cloneTable(engine.meet)
}

type searchFunc func(order *bitmatrix.Matrix, i, j int) (int, bool)

func operationTable(order *bitmatrix.Matrix, search searchFunc) ([][]int, error) {
	size := order.Order()
	table := make([][]int, size)
	for i := range table {
		table[i] = make([]int, size)
	}

	for i := range size {
		table[i][i] = i
		for j := i + 1; j < size; j++ {
			result, ok := search(order, i, j)
			if !ok {
				return nil, errors.Errorf("no candidate for elements %v and %v", i, j)
			}
			table[i][j] = result
			table[j][i] = result
		}
	}
	return table, nil
}

// findJoin expects i < j
func findJoin(order *bitmatrix.Matrix, i, j int) (int, bool) {
	for k := i; k >= 0; k-- {
		if order.Test(i, k) && order.Test(j, k) {
			return k, true
		}
	}
	return -1, false
}

// findMeet expects i < j
func findMeet(order *bitmatrix.Matrix, i, j int) (int, bool) {
	for k := j; k < order.Order(); k++ {
		if order.Test(k, i) && order.Test(k, j) {
			return k, true
		}
	}
	return -1, false
}

func cloneTable(table [][]int) [][]int {
	cloned := make([][]int, len(table))
	for i, row := range table {
		cloned[i] = append([]int(nil), row...)
	}
	return cloned
}
