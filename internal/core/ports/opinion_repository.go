package ports

import (
	"context"

	"shop/internal/core/domain/model/opinion"
)

// OpinionRepository defines the persistence contract for order opinions.
type OpinionRepository interface {
	// ExistsForOrder reports whether an opinion has already been recorded
	// for the given order.
	ExistsForOrder(ctx context.Context, orderID int) (bool, error)

	// Add persists a new opinion and returns it rehydrated with the
	// assigned id and creation timestamp. The unique index on order_id is
	// the final guard on the one-per-order invariant; a duplicate insert
	// is reported as a conflict.
	Add(ctx context.Context, aggregate *opinion.Opinion) (*opinion.Opinion, error)
}
