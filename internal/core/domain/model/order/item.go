package order

import (
	"fmt"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemInput is the canonical normalized-item shape produced by the request
// boundary. Key aliasing (snake_case vs camelCase) is resolved before an
// input ever reaches this package.
type ItemInput struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// Item is a validated order line. Items are created atomically with their
// order and are immutable thereafter.
type Item struct {
	productID int
	quantity  int
	unitPrice decimal.Decimal
}

// NewItems validates a submitted batch of order lines and returns them in
// input order, one item per row. Validation rejects the whole batch on the
// first malformed row, naming its 1-based position; malformed rows are never
// silently dropped.
//
// Duplicate product references across rows pass here. The unique constraint
// on (order_id, product_id) at the storage layer is the final guard and
// surfaces as a conflict.
func NewItems(inputs []ItemInput) ([]Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"items", fmt.Errorf("order must include at least one item"))
	}

	items := make([]Item, 0, len(inputs))
	for i, in := range inputs {
		position := i + 1

		if in.ProductID <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("product ID for item #%d", position),
				fmt.Errorf("%d is not a positive integer", in.ProductID))
		}
		if in.Quantity <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("quantity for item #%d", position),
				fmt.Errorf("%d is not a positive integer", in.Quantity))
		}
		if !in.UnitPrice.IsPositive() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("unit price for item #%d", position),
				fmt.Errorf("%s is not a positive number", in.UnitPrice))
		}

		items = append(items, Item{
			productID: in.ProductID,
			quantity:  in.Quantity,
			unitPrice: in.UnitPrice,
		})
	}

	return items, nil
}

// RestoreItem rehydrates a persisted order line without re-running batch
// validation. Used by the persistence adapter only.
func RestoreItem(productID int, quantity int, unitPrice decimal.Decimal) Item {
	return Item{productID: productID, quantity: quantity, unitPrice: unitPrice}
}

// ProductID returns the referenced product's id.
func (i Item) ProductID() int {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// DistinctProductIDs returns the distinct product ids referenced by the
// items, preserving first-appearance order. Used for the existence check
// against the product collaborator.
func DistinctProductIDs(items []Item) []int {
	seen := make(map[int]struct{}, len(items))
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.productID]; ok {
			continue
		}
		seen[item.productID] = struct{}{}
		ids = append(ids, item.productID)
	}
	return ids
}
