package queries

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves order views, optionally narrowed to a single user
// or a single status. Filters combine; an unfiltered query returns every
// order.
//
// Example:
//
//	query, err := NewGetOrdersQuery().ForUser(5)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	userID    int
	statusRef status.Identifier

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an unfiltered query over all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// ForUser returns a copy of the query narrowed to one user's orders.
// The user id must be a positive integer.
func (q GetOrdersQuery) ForUser(userID int) (GetOrdersQuery, error) {
	if err := q.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if userID <= 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"user ID", fmt.Errorf("%d is not a positive integer", userID))
	}
	q.userID = userID
	return q, nil
}

// WithStatus returns a copy of the query narrowed to orders in the status the
// identifier names. An absent identifier is rejected; resolution against the
// catalog happens in the handler.
func (q GetOrdersQuery) WithStatus(ref status.Identifier) (GetOrdersQuery, error) {
	if err := q.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if ref.IsZero() {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("status")
	}
	q.statusRef = ref
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the user filter, zero when unfiltered.
func (q GetOrdersQuery) UserID() int {
	return q.userID
}

// StatusRef returns the status filter, the zero identifier when unfiltered.
func (q GetOrdersQuery) StatusRef() status.Identifier {
	return q.statusRef
}
