package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created with their items in one atomic unit and mutated only
// through the conditional status update.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items and
	// returns the assigned order id. A duplicate (order, product) item
	// pair is reported as a conflict.
	Add(ctx context.Context, aggregate *order.Order) (int, error)

	// Get retrieves an order aggregate with its items by id.
	// Returns a not-found error if no such order exists.
	Get(ctx context.Context, id int) (*order.Order, error)

	// UpdateStatus persists the aggregate's status and approval timestamp,
	// conditioned on the status the caller previously read. The update is a
	// compare-and-swap: when the row has moved on since the read, the update
	// affects nothing and a conflict is reported, making the lost-update
	// race on concurrent transitions detectable and retryable.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expectedStatusID int) error
}
