package bitmatrix

// indexer interface is designed to give a unique serial index to a (row, column) coordinate of a square matrix and vice versa
type indexer interface {
	// Returns the row-major serial index of the (row, column) coordinate
	Index(row, column uint) uint
	// Returns the (row, column) coordinate from a serial index
	Attributes(index uint) (row uint, column uint)
}

func newIndexer(order uint) indexer {
	return &indexerImplementation{
		order: order,
	}
}
