package bitmatrix

type indexerImplementation struct {
	order uint
}

func (indexer *indexerImplementation) Index(row, column uint) uint {
	return row*indexer.order + column
}

func (indexer *indexerImplementation) Attributes(index uint) (row, column uint) {
	row = index / indexer.order
	column = index % indexer.order
	return row, column
}
