package queries

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its status, items and opinion.
//
// Example:
//
//	query := NewGetOrderQuery(42)
//	handler := NewGetOrderQueryHandler(db)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %d is %s\n", order.ID, order.Status.Name)
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by its id.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order ID", fmt.Errorf("%d is not a positive integer", orderID))
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// StatusResponse is a status as exposed by the read side.
type StatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OrderItemResponse is one order line in a read-side order view.
type OrderItemResponse struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OpinionResponse is the opinion attached to an order, if any.
type OpinionResponse struct {
	ID        int       `json:"id"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse is the full read-side view of an order.
type OrderResponse struct {
	ID         int                 `json:"id"`
	UserID     int                 `json:"user_id"`
	Status     StatusResponse      `json:"status"`
	ApprovedAt *time.Time          `json:"approved_at"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
	Opinion    *OpinionResponse    `json:"opinion,omitempty"`
}
