package stock

import (
	"sort"

	"supply/internal/core/domain/model/kernel"
)

// Key identifies a stock entry by its (product, warehouse) pair.
type Key struct {
	ProductID   kernel.UUID
	WarehouseID kernel.UUID
}

// NewKey creates a Key after validating both identifiers.
func NewKey(productID, warehouseID kernel.UUID) (Key, error) {
	if err := productID.Validate(); err != nil {
		return Key{}, err
	}
	if err := warehouseID.Validate(); err != nil {
		return Key{}, err
	}
	return Key{ProductID: productID, WarehouseID: warehouseID}, nil
}

// IsEqual reports whether two keys address the same stock entry.
func (k Key) IsEqual(other Key) bool {
	return k.ProductID.IsEqual(other.ProductID) && k.WarehouseID.IsEqual(other.WarehouseID)
}

// Less orders keys canonically: by warehouse id, then product id. All
// multi-key ledger operations lock entries in this order so that two orders
// with overlapping but differently-ordered key sets can never deadlock.
func (k Key) Less(other Key) bool {
	if k.WarehouseID.String() != other.WarehouseID.String() {
		return k.WarehouseID.String() < other.WarehouseID.String()
	}
	return k.ProductID.String() < other.ProductID.String()
}

// SortKeys sorts keys in place into canonical locking order.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}
