package output

import (
	"encoding/json"
	"os"

	"github.com/limaJavier/quasiorder/pkg/bitmatrix"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrInvalidOrder = errors.New("invalid serialized order")

// OrderJson is the serialized form of an order: its size and the serial indices of its set bits
type OrderJson struct {
	Order int   `json:"order"`
	Bits  []int `json:"bits"`
}

func MarshalOrder(order *bitmatrix.Matrix) ([]byte, error) {
	return json.Marshal(OrderJson{
		Order: order.Order(),
		Bits:  order.SerialIndices(),
	})
}

func UnmarshalOrder(bytes []byte) (*bitmatrix.Matrix, error) {
	var serialized OrderJson
	if err := json.Unmarshal(bytes, &serialized); err != nil {
		return nil, errors.Wrap(err, "cannot parse order")
	}

	size := serialized.Order * serialized.Order
	if serialized.Order < 0 {
		return nil, errors.Wrapf(ErrInvalidOrder, "order must be non-negative: %v", serialized.Order)
	} else if bit, ok := lo.Find(serialized.Bits, func(bit int) bool { return bit < 0 || bit >= size }); ok {
		return nil, errors.Wrapf(ErrInvalidOrder, "bit %v is out of range for an order of size %v", bit, serialized.Order)
	}

	order := bitmatrix.New(serialized.Order)
	for _, bit := range serialized.Bits {
		row, column := order.Coordinates(bit)
		order.Set(row, column)
	}
	return order, nil
}

func OrderFromJson(file string) (*bitmatrix.Matrix, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read order file %v", file)
	}
	return UnmarshalOrder(bytes)
}
