package queries

import (
	"errors"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
		"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
	)
)

// GetStaleOrdersQuery retrieves the ids of unapproved orders created before
// a cutoff. Feeds the background job that cancels abandoned orders.
type GetStaleOrdersQuery struct {
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleOrdersQuery creates a query for unapproved orders created
// before the given cutoff.
func NewGetStaleOrdersQuery(olderThan time.Time) (GetStaleOrdersQuery, error) {
	if olderThan.IsZero() {
		return GetStaleOrdersQuery{}, errs.NewValueIsRequiredError("olderThan")
	}
	return GetStaleOrdersQuery{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

// OlderThan returns the creation-time cutoff.
func (q GetStaleOrdersQuery) OlderThan() time.Time {
	return q.olderThan
}
